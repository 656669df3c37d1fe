package storage

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/jsphweid/fifths/config"
)

// Dynamo stores each key as one item {PK, Value} in a DynamoDB table.
// Pointing Endpoint at dynamodb-local works for development.
type Dynamo struct {
	client dynamodbiface.DynamoDBAPI
	table  string
}

func NewDynamo(c config.DynamoConfig) (*Dynamo, error) {
	awsConfig := &aws.Config{Region: aws.String(c.Region)}
	if c.Endpoint != "" {
		awsConfig.Endpoint = aws.String(c.Endpoint)
	}
	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("could not create a new DynamoDB session: %w", err)
	}
	return NewDynamoWithClient(dynamodb.New(sess), c.Table), nil
}

func NewDynamoWithClient(client dynamodbiface.DynamoDBAPI, table string) *Dynamo {
	return &Dynamo{client: client, table: table}
}

func (d *Dynamo) key(key string) map[string]*dynamodb.AttributeValue {
	return map[string]*dynamodb.AttributeValue{
		"PK": {S: aws.String(key)},
	}
}

func (d *Dynamo) Get(key string) ([]byte, bool, error) {
	res, err := d.client.GetItem(&dynamodb.GetItemInput{
		TableName:      aws.String(d.table),
		Key:            d.key(key),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, false, fmt.Errorf("error from DynamoDB reading %s: %w", key, err)
	}
	if res.Item == nil {
		return nil, false, nil
	}
	v, ok := res.Item["Value"]
	if !ok || v.S == nil {
		return nil, false, nil
	}
	return []byte(*v.S), true, nil
}

func (d *Dynamo) Set(key string, value []byte) error {
	item := d.key(key)
	item["Value"] = &dynamodb.AttributeValue{S: aws.String(string(value))}
	_, err := d.client.PutItem(&dynamodb.PutItemInput{
		TableName: aws.String(d.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("error from DynamoDB writing %s: %w", key, err)
	}
	return nil
}

func (d *Dynamo) Remove(key string) error {
	_, err := d.client.DeleteItem(&dynamodb.DeleteItemInput{
		TableName: aws.String(d.table),
		Key:       d.key(key),
	})
	if err != nil {
		return fmt.Errorf("error from DynamoDB removing %s: %w", key, err)
	}
	return nil
}

func (d *Dynamo) Close() error {
	return nil
}
