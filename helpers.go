package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/streadway/amqp"

	"github.com/muhammadolammi/skillmatchworker/internal/extract"
	"github.com/muhammadolammi/skillmatchworker/internal/matcher"
)

// --- File Download ---

func DownloadFromR2(ctx context.Context, client *s3.Client, bucket, key string) ([]byte, error) {
	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get object: %w", err)
	}
	defer out.Body.Close()

	buf := new(bytes.Buffer)
	_, err = io.Copy(buf, out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read object body: %w", err)
	}
	return buf.Bytes(), nil
}

// userFacingError maps pipeline errors onto messages stored with the result
// entry. Extraction exhaustion usually means a scanned image with no text
// layer, so the message tells the user how to fix the upload.
func userFacingError(err error) string {
	var extractErr *extract.ExtractionError
	if errors.As(err, &extractErr) {
		return "could not read the document, it may be a scanned image; please resubmit it as a searchable PDF or DOCX"
	}
	var matchErr *matcher.MatchError
	if errors.As(err, &matchErr) {
		return "skill matching failed, please retry later"
	}
	return err.Error()
}

func publishSessionUpdate(rabbitConn *amqp.Connection, sessionID string, update map[string]any) error {
	ch, err := rabbitConn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	body, _ := json.Marshal(update)
	routingKey := fmt.Sprintf("session.%s", sessionID)

	return ch.Publish(
		"session_updates", // exchange
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}
