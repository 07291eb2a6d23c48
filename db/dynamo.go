package db

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/jsphweid/fretfinder/fingering"
)

// DynamoCache stores entries in a table with string partition key "PK".
type DynamoCache struct {
	client dynamodbiface.DynamoDBAPI
	table  string
}

func NewDynamoCache(endpoint, region, table string) (*DynamoCache, error) {
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String(region),
		Endpoint: aws.String(endpoint),
	})
	if err != nil {
		return nil, fmt.Errorf("creating dynamodb session: %w", err)
	}
	return NewDynamoCacheWithClient(dynamodb.New(sess), table), nil
}

func NewDynamoCacheWithClient(client dynamodbiface.DynamoDBAPI, table string) *DynamoCache {
	return &DynamoCache{client: client, table: table}
}

func (d *DynamoCache) Get(key string) (Entry, bool, error) {
	out, err := d.client.GetItem(&dynamodb.GetItemInput{
		TableName: aws.String(d.table),
		Key: map[string]*dynamodb.AttributeValue{
			"PK": {S: aws.String(key)},
		},
	})
	if err != nil {
		return Entry{}, false, fmt.Errorf("dynamodb get %v: %w", key, err)
	}
	if len(out.Item) == 0 {
		return Entry{}, false, nil
	}
	e, err := decodeEntry(out.Item)
	if err != nil {
		return Entry{}, false, fmt.Errorf("dynamodb get %v: %w", key, err)
	}
	return e, true, nil
}

func (d *DynamoCache) Put(key string, e Entry) error {
	item, err := encodeEntry(e)
	if err != nil {
		return err
	}
	item["PK"] = &dynamodb.AttributeValue{S: aws.String(key)}
	_, err = d.client.PutItem(&dynamodb.PutItemInput{
		TableName: aws.String(d.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("dynamodb put %v: %w", key, err)
	}
	return nil
}

func encodeEntry(e Entry) (map[string]*dynamodb.AttributeValue, error) {
	frets, err := json.Marshal(e.Fingering)
	if err != nil {
		return nil, fmt.Errorf("encoding fingering: %w", err)
	}
	return map[string]*dynamodb.AttributeValue{
		"Found":      {BOOL: aws.Bool(e.Found)},
		"Fingering":  {S: aws.String(string(frets))},
		"Candidates": {N: aws.String(strconv.Itoa(e.Candidates))},
	}, nil
}

func decodeEntry(item map[string]*dynamodb.AttributeValue) (Entry, error) {
	var e Entry
	if v, ok := item["Found"]; ok && v.BOOL != nil {
		e.Found = *v.BOOL
	}
	if v, ok := item["Candidates"]; ok && v.N != nil {
		n, err := strconv.Atoi(*v.N)
		if err != nil {
			return e, fmt.Errorf("decoding candidates: %w", err)
		}
		e.Candidates = n
	}
	if v, ok := item["Fingering"]; ok && v.S != nil {
		var f fingering.Fingering
		if err := json.Unmarshal([]byte(*v.S), &f); err != nil {
			return e, fmt.Errorf("decoding fingering: %w", err)
		}
		e.Fingering = f
	}
	return e, nil
}
