// Package firestore keeps daily records and goals in Cloud Firestore.
// Users stay in postgres; this package only replaces the record and goal stores.
package firestore

import (
	"context"
	"log"

	fs "cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/limbo/drinklog/pkg/cleanup"
	"google.golang.org/api/option"
)

const (
	recordsCollection = "dailyRecords"
	goalsCollection   = "drinkGoals"
)

// NewClient opens a firestore client for the project. An empty credentialsFile falls back
// to application default credentials.
func NewClient(ctx context.Context, projectID, credentialsFile string) *fs.Client {
	opts := []option.ClientOption{}
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		log.Fatal("initializing firebase app error: " + err.Error())
	}
	client, err := app.Firestore(ctx)
	if err != nil {
		log.Fatal("getting firestore client error: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing firestore client",
		F:    client.Close,
	})
	return client
}
