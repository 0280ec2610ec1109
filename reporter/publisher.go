package reporter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/communication"
	"bikeshare/domain/business/queryresponse"
	"bikeshare/domain/business/stats"
)

const (
	publisherStage          = "analyzer"
	contentTypeJson         = "application/json"
	defaultRoutingKeyPrefix = "report"
	defaultTimeout          = 5 * time.Second
)

// Broker publishes messages in a message broker. It's implemented by communication.RabbitMQ
type Broker interface {
	DeclareNonAnonymousQueues(queuesConfig []communication.QueueDeclarationConfig) error
	DeclareExchanges(exchangesConfig []communication.ExchangeDeclarationConfig) error
	PublishMessageInQueue(ctx context.Context, queueName string, message []byte, contentType string) error
	PublishMessageInExchange(ctx context.Context, exchange string, routingKey string, message []byte, contentType string) error
}

var _ Broker = (*communication.RabbitMQ)(nil)

// PublisherConfig configuration of the report Publisher
// + Queue: queue where reports are published when there is no exchange
// + Exchange: exchange where reports are published with the routing key RoutingKeyPrefix.city
// + TimeoutSeconds: max time to publish a report
type PublisherConfig struct {
	Enabled          bool                                    `yaml:"enabled"`
	Queue            communication.QueueDeclarationConfig    `yaml:"queue"`
	Exchange         communication.ExchangeDeclarationConfig `yaml:"exchange"`
	RoutingKeyPrefix string                                  `yaml:"routing_key_prefix"`
	TimeoutSeconds   int                                     `yaml:"timeout_seconds"`
}

// Publisher sends reports as json messages to a broker
type Publisher struct {
	broker Broker
	config PublisherConfig
}

func NewPublisher(broker Broker, publisherConfig PublisherConfig) *Publisher {
	return &Publisher{
		broker: broker,
		config: publisherConfig,
	}
}

func (p *Publisher) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: publisher][method: %s][status: ERROR] %s: %s", method, message, err.Error())
	}
	return fmt.Sprintf("[component: publisher][method: %s][status: OK] %s", method, message)
}

// DeclareTopology declares the exchange and the queue of the publisher, if they are configured
func (p *Publisher) DeclareTopology() error {
	if p.config.Exchange.Name == "" && p.config.Queue.Name == "" {
		return ErrNoDestination
	}

	if p.config.Exchange.Name != "" {
		err := p.broker.DeclareExchanges([]communication.ExchangeDeclarationConfig{p.config.Exchange})
		if err != nil {
			log.Error(p.getLogMessage("DeclareTopology", "error declaring exchange", err))
			return err
		}
	}

	if p.config.Queue.Name != "" {
		err := p.broker.DeclareNonAnonymousQueues([]communication.QueueDeclarationConfig{p.config.Queue})
		if err != nil {
			log.Error(p.getLogMessage("DeclareTopology", "error declaring queue", err))
			return err
		}
	}

	log.Info(p.getLogMessage("DeclareTopology", "topology declared correctly!", nil))
	return nil
}

// Report publishes report wrapped in a QueryResponse. If an exchange is configured the message
// goes there, otherwise it goes to the queue.
func (p *Publisher) Report(ctx context.Context, report *stats.Report) error {
	queryResponse := queryresponse.NewQueryResponse(report, publisherStage)
	queryResponseBytes, err := json.Marshal(queryResponse)
	if err != nil {
		return fmt.Errorf("error marshalling query response: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.getTimeout())
	defer cancel()

	switch {
	case p.config.Exchange.Name != "":
		routingKey := p.getRoutingKey(report.City)
		err = p.broker.PublishMessageInExchange(ctx, p.config.Exchange.Name, routingKey, queryResponseBytes, contentTypeJson)
	case p.config.Queue.Name != "":
		err = p.broker.PublishMessageInQueue(ctx, p.config.Queue.Name, queryResponseBytes, contentTypeJson)
	default:
		err = ErrNoDestination
	}

	if err != nil {
		log.Error(p.getLogMessage("Report", fmt.Sprintf("error publishing report %s", queryResponse.GetQueryID()), err))
		return fmt.Errorf("error publishing report: %w", err)
	}

	log.Info(p.getLogMessage("Report", fmt.Sprintf("report %s published", queryResponse.GetQueryID()), nil))
	return nil
}

func (p *Publisher) getRoutingKey(city string) string {
	prefix := p.config.RoutingKeyPrefix
	if prefix == "" {
		prefix = defaultRoutingKeyPrefix
	}
	return fmt.Sprintf("%s.%s", prefix, city)
}

func (p *Publisher) getTimeout() time.Duration {
	if p.config.TimeoutSeconds <= 0 {
		return defaultTimeout
	}
	return time.Duration(p.config.TimeoutSeconds) * time.Second
}
