package config

import (
	"os"
	"strings"
)

type KafkaConfig struct {
	Brokers     []string
	EventsTopic string
	MailTopic   string
}

func NewKafkaConfig() *KafkaConfig {
	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		brokers = "localhost:9092"
	}
	eventsTopic := os.Getenv("KAFKA_EVENTS_TOPIC")
	if eventsTopic == "" {
		eventsTopic = "review-events"
	}
	mailTopic := os.Getenv("KAFKA_MAIL_TOPIC")
	if mailTopic == "" {
		mailTopic = "review-mail"
	}
	return &KafkaConfig{
		Brokers:     strings.Split(brokers, ","),
		EventsTopic: eventsTopic,
		MailTopic:   mailTopic,
	}
}
