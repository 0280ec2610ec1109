package utils

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
)

// ContainsString returns true if targetString is one of sliceOfStrings
func ContainsString(targetString string, sliceOfStrings []string) bool {
	for i := range sliceOfStrings {
		if sliceOfStrings[i] == targetString {
			return true
		}
	}
	return false
}

// IndexOfFold returns the index of the first element of sliceOfStrings equal to targetString
// under case folding, or -1 if there is none
func IndexOfFold(targetString string, sliceOfStrings []string) int {
	for i := range sliceOfStrings {
		if strings.EqualFold(sliceOfStrings[i], targetString) {
			return i
		}
	}
	return -1
}

// GetConfigFile returns the content of the file in filepath
func GetConfigFile(filepath string) ([]byte, error) {
	configFile, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("error opening config file: %w", err)
	}
	defer configFile.Close()

	configFileBytes, err := io.ReadAll(configFile)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	return configFileBytes, nil
}

// GetSignalChannel returns a channel that receive interrupt or termination signals
func GetSignalChannel() chan os.Signal {
	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, os.Interrupt, syscall.SIGTERM)
	return signalChannel
}
