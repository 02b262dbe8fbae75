package dynamo

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/matchday-api/internal/domain"
	"github.com/matchday-api/internal/pkg/id"
)

// UserRepo is the DynamoDB user store. PK: user_id, with an email GSI
// for the email-keyed operations the auth flows use.
type UserRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewUserRepo(client *dynamodb.Client, tableName string) *UserRepo {
	return &UserRepo{client: client, tableName: tableName}
}

// FindByEmail returns the user with this email, or nil when none exists.
// Emails are stored lowercase so the GSI query is an exact match.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*domain.StoredUser, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String("email-index"),
		KeyConditionExpression:    aws.String("#e = :email"),
		ExpressionAttributeNames:  map[string]string{"#e": "email"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":email": &types.AttributeValueMemberS{Value: email}},
		Limit:                     aws.Int32(1),
	})
	if err != nil {
		return nil, fmt.Errorf("query user by email: %w", err)
	}
	if len(out.Items) == 0 {
		return nil, nil
	}
	var u domain.StoredUser
	if err := attributevalue.UnmarshalMap(out.Items[0], &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create appends a new user record. Email uniqueness is the caller's
// pre-check; two concurrent registrations can both land.
func (r *UserRepo) Create(ctx context.Context, payload domain.CreateUserPayload) (*domain.StoredUser, error) {
	now := time.Now().UTC()
	u := domain.StoredUser{
		ID:        id.New(),
		Email:     payload.Email,
		Password:  payload.Password,
		Name:      payload.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	item, err := attributevalue.MarshalMap(&u)
	if err != nil {
		return nil, fmt.Errorf("marshal user: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdatePassword overwrites the password hash of the user with this
// email and bumps updated_at.
func (r *UserRepo) UpdatePassword(ctx context.Context, email, newHash string) error {
	u, err := r.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if u == nil {
		return fmt.Errorf("user %s: %w", email, domain.ErrNotFound)
	}
	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                aws.String(r.tableName),
		Key:                      map[string]types.AttributeValue{"user_id": &types.AttributeValueMemberS{Value: u.ID}},
		UpdateExpression:         aws.String("SET #p = :p, #u = :u"),
		ExpressionAttributeNames: map[string]string{"#p": "password", "#u": "updated_at"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":p": &types.AttributeValueMemberS{Value: newHash},
			":u": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339)},
		},
	})
	return err
}
