// Package notify sends push notifications to user devices.
package notify

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

type Message struct {
	Title string
	Body  string
	Data  map[string]string
}

type Notifier interface {
	Send(ctx context.Context, token string, msg Message) error
}

// FCM delivers messages through Firebase Cloud Messaging.
type FCM struct {
	client *messaging.Client
}

// NewFCM builds a sender from a service account key file. With an empty path the
// application default credentials are used.
func NewFCM(ctx context.Context, credentialsFile string) (*FCM, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase.NewApp -> %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("app.Messaging -> %w", err)
	}

	return &FCM{client: client}, nil
}

func (f *FCM) Send(ctx context.Context, token string, msg Message) error {
	_, err := f.client.Send(ctx, &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
	})
	if err != nil {
		return fmt.Errorf("f.client.Send -> %w", err)
	}

	return nil
}

// Log only records messages. It stands in for FCM when push is disabled.
type Log struct{}

func (Log) Send(_ context.Context, token string, msg Message) error {
	zap.L().Debug("push disabled, message dropped",
		zap.String("title", msg.Title),
		zap.Int("token_len", len(token)),
	)

	return nil
}
