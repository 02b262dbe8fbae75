package sns

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/matchday-api/internal/config"
	"github.com/matchday-api/internal/domain"
)

// OrderNotifier publishes a short "order placed" summary for ops.
type OrderNotifier interface {
	OrderPlaced(ctx context.Context, order *domain.StoredOrder) error
}

type notifier struct {
	client   *sns.Client
	topicARN string
}

func NewNotifier(cfg *config.Config) (OrderNotifier, error) {
	if cfg.SNSTopicARN == "" {
		return nil, fmt.Errorf("SNS_TOPIC_ARN not set")
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.SNSRegion),
	)
	if err != nil {
		return nil, err
	}
	return &notifier{client: sns.NewFromConfig(awsCfg), topicARN: cfg.SNSTopicARN}, nil
}

func (n *notifier) OrderPlaced(ctx context.Context, order *domain.StoredOrder) error {
	subject := "New order " + order.ID
	message := fmt.Sprintf("Order %s — %s <%s>, %d item(s), total %.2f, placed %s",
		order.ID, order.User.FullName, order.User.Email, len(order.Items), order.Totals.Total, order.PlacedAt)
	_, err := n.client.Publish(ctx, &sns.PublishInput{
		TopicArn: &n.topicARN,
		Subject:  &subject,
		Message:  &message,
	})
	return err
}
