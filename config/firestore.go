package config

import (
	"context"
	"log"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

var (
	FirestoreClient *firestore.Client
	AuthClient      *fbauth.Client
)

func ConnectFirebase() {
	ctx := context.Background()

	var opts []option.ClientOption
	if AppConfig.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(AppConfig.CredentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: AppConfig.FirebaseProjectID}, opts...)
	if err != nil {
		log.Fatalf("Unable to initialize Firebase app: %v", err)
	}

	FirestoreClient, err = app.Firestore(ctx)
	if err != nil {
		log.Fatalf("Unable to create Firestore client: %v", err)
	}

	AuthClient, err = app.Auth(ctx)
	if err != nil {
		log.Fatalf("Unable to create Firebase Auth client: %v", err)
	}

	log.Printf("Firestore connected (project: %s)", AppConfig.FirebaseProjectID)
}

func CloseFirebase() {
	if FirestoreClient != nil {
		FirestoreClient.Close()
		log.Println("Firestore connection closed")
	}
}
