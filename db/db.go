package db

import (
	"fmt"
	"strconv"

	"github.com/ltrask/melodiff/constants"
	"github.com/ltrask/melodiff/model"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

// GetRecordingMetadatas batch-fetches metadata for recordings by name.
// Names without a row are simply absent from the result map. DynamoDB
// BatchGetItem caps a request at 100 keys; we stay far below that.
func GetRecordingMetadatas(names []string) (map[string]model.RecordingMetadata, error) {
	if len(names) > 10 {
		return nil, fmt.Errorf("not supposed to pass in more than 10 names, got %v", len(names))
	}

	res := make(map[string]model.RecordingMetadata)
	if len(names) == 0 {
		return res, nil
	}

	var keys []map[string]*dynamodb.AttributeValue
	for _, name := range names {
		key := make(map[string]*dynamodb.AttributeValue)
		key["PK"] = &dynamodb.AttributeValue{
			S: aws.String(name),
		}
		keys = append(keys, key)
	}

	endpoint := constants.GetDynamoEndpoint()
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create a DynamoDB session: %w", err)
	}

	table := constants.GetMetadataTable()
	client := dynamodb.New(sess)
	input := &dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			table: {Keys: keys},
		},
	}
	dbres, err := client.BatchGetItem(input)
	if err != nil {
		return nil, fmt.Errorf("error from DynamoDB: %w", err)
	}

	for _, v := range dbres.Responses[table] {
		var m model.RecordingMetadata
		if v["Year"] != nil && v["Year"].N != nil {
			year, _ := strconv.ParseUint(*v["Year"].N, 10, 32)
			m.Year = uint(year)
		}
		if v["Title"] != nil && v["Title"].S != nil {
			m.Title = *v["Title"].S
		}
		if v["Artist"] != nil && v["Artist"].S != nil {
			m.Artist = *v["Artist"].S
		}
		if v["Instrument"] != nil && v["Instrument"].S != nil {
			m.Instrument = *v["Instrument"].S
		}
		res[*v["PK"].S] = m
	}

	return res, nil
}
