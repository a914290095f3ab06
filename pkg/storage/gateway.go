package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventhub/pkg/logger"
	"eventhub/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Document is anything the gateway can insert.
type Document interface {
	Stamp(now time.Time)
}

// Gateway owns the process-wide database handle. A gateway without a handle
// is valid and fails every operation with ErrUnavailable.
type Gateway struct {
	client  *mongo.Client
	db      *mongo.Database
	name    string
	timeout time.Duration
	now     func() time.Time
}

func NewGateway(client *mongo.Client, dbName string, timeout time.Duration) *Gateway {
	g := &Gateway{
		client:  client,
		name:    dbName,
		timeout: timeout,
		now:     func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	}
	if client != nil {
		g.db = client.Database(dbName)
	}
	return g
}

// Disabled returns a gateway that has no connection.
func Disabled(dbName string, timeout time.Duration) *Gateway {
	return NewGateway(nil, dbName, timeout)
}

// Connect dials uri and verifies the connection with a ping. On failure the
// returned gateway is disabled and the error says why.
func Connect(ctx context.Context, log *logger.Logger, uri, dbName string, connTimeout, opTimeout time.Duration) (*Gateway, error) {
	if uri == "" {
		return Disabled(dbName, opTimeout), fmt.Errorf("%w: no database URL configured", ErrUnavailable)
	}

	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return Disabled(dbName, opTimeout), fmt.Errorf("%w: connect: %v", ErrUnavailable, err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return Disabled(dbName, opTimeout), fmt.Errorf("%w: ping: %v", ErrUnavailable, err)
	}

	log.Info("Successfully connected to MongoDB", "database", dbName)
	return NewGateway(client, dbName, opTimeout), nil
}

func (g *Gateway) Available() bool {
	return g != nil && g.db != nil
}

func (g *Gateway) Name() string {
	return g.name
}

func (g *Gateway) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, g.timeout)
}

func (g *Gateway) collection(name string) (*mongo.Collection, error) {
	if !g.Available() {
		return nil, ErrUnavailable
	}
	return g.db.Collection(name), nil
}

// Insert stamps doc, stores it in the named collection and returns the
// generated identifier.
func (g *Gateway) Insert(ctx context.Context, collectionName string, doc Document) (model.ID, error) {
	coll, err := g.collection(collectionName)
	if err != nil {
		return model.ID{}, err
	}

	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	doc.Stamp(g.now())
	result, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return model.ID{}, fmt.Errorf("failed to insert into %s: %w", collectionName, classify(err))
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return model.ID{}, fmt.Errorf("%w: %T", ErrUnexpectedID, result.InsertedID)
	}
	return model.IDFromObjectID(oid), nil
}

// Find decodes up to limit documents matching filter into results, which
// must be a pointer to a slice. Ordering is the engine's natural order.
func (g *Gateway) Find(ctx context.Context, collectionName string, filter *Filter, limit int, results any) error {
	coll, err := g.collection(collectionName)
	if err != nil {
		return err
	}

	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := coll.Find(ctx, filter.BSON(), opts)
	if err != nil {
		return fmt.Errorf("failed to query %s: %w", collectionName, classify(err))
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, results); err != nil {
		return fmt.Errorf("failed to decode %s: %w", collectionName, classify(err))
	}
	return nil
}

func (g *Gateway) Exists(ctx context.Context, collectionName string, id model.ID) (bool, error) {
	coll, err := g.collection(collectionName)
	if err != nil {
		return false, err
	}

	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	opts := options.FindOne().SetProjection(bson.D{{Key: "_id", Value: 1}})
	err = coll.FindOne(ctx, bson.D{{Key: "_id", Value: id.ObjectID()}}, opts).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up %s %s: %w", collectionName, id, classify(err))
	}
	return true, nil
}

func (g *Gateway) Count(ctx context.Context, collectionName string) (int64, error) {
	coll, err := g.collection(collectionName)
	if err != nil {
		return 0, err
	}

	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	count, err := coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", collectionName, classify(err))
	}
	return count, nil
}

func (g *Gateway) ListCollections(ctx context.Context) ([]string, error) {
	if !g.Available() {
		return nil, ErrUnavailable
	}

	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	names, err := g.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", classify(err))
	}
	return names, nil
}

func (g *Gateway) Ping(ctx context.Context) error {
	if !g.Available() {
		return ErrUnavailable
	}

	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	if err := g.client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (g *Gateway) Disconnect(ctx context.Context) error {
	if !g.Available() {
		return nil
	}
	return g.client.Disconnect(ctx)
}

// classify marks connectivity failures as ErrUnavailable so callers can tell
// an unreachable store from a failed query.
func classify(err error) error {
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) || errors.Is(err, mongo.ErrClientDisconnected) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return err
}
