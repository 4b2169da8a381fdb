package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DEEJ4Y/briefing"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Config holds the configuration for the MongoDB history store.
type Config struct {
	// Collection is the MongoDB collection where entries are stored.
	// Required.
	Collection *mongo.Collection

	// Field names for entry properties (optional, have defaults)
	TimestampField string // default: "timestamp"
	WatchlistField string // default: "watchlist"
	TextField      string // default: "text"

	// Condition is an optional additional filter applied to every read
	// and delete. It lets several histories share one collection.
	// Example: bson.M{"desk": "equities"}. Add does not set these fields.
	Condition bson.M
}

// Store implements briefing.HistoryStore for MongoDB.
type Store struct {
	collection     *mongo.Collection
	timestampField string
	watchlistField string
	textField      string
	condition      bson.M
}

// NewStore creates a new MongoDB history store with the given configuration.
func NewStore(config Config) (*Store, error) {
	if config.Collection == nil {
		return nil, fmt.Errorf("collection is required")
	}

	// Set defaults
	if config.TimestampField == "" {
		config.TimestampField = "timestamp"
	}
	if config.WatchlistField == "" {
		config.WatchlistField = "watchlist"
	}
	if config.TextField == "" {
		config.TextField = "text"
	}

	return &Store{
		collection:     config.Collection,
		timestampField: config.TimestampField,
		watchlistField: config.WatchlistField,
		textField:      config.TextField,
		condition:      config.Condition,
	}, nil
}

// EnsureIndexes creates the timestamp index List and Trim sort on.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexModel := mongo.IndexModel{
		Keys: bson.D{{Key: s.timestampField, Value: -1}},
	}
	if _, err := s.collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		return fmt.Errorf("create index failed: %w", err)
	}
	return nil
}

// Add inserts a new entry.
func (s *Store) Add(ctx context.Context, entry *briefing.Entry) error {
	watchlist := entry.Watchlist
	if watchlist == nil {
		watchlist = []string{}
	}

	doc := bson.M{
		"_id":            entry.ID,
		s.timestampField: entry.Timestamp,
		s.watchlistField: watchlist,
		s.textField:      entry.Text,
	}
	if _, err := s.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert failed: %w", err)
	}
	return nil
}

// List returns at most limit entries, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]*briefing.Entry, error) {
	opts := options.Find().SetSort(bson.D{{Key: s.timestampField, Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := s.collection.Find(ctx, s.filter(bson.M{}), opts)
	if err != nil {
		return nil, fmt.Errorf("find failed: %w", err)
	}

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("cursor failed: %w", err)
	}

	entries := make([]*briefing.Entry, 0, len(docs))
	for _, doc := range docs {
		entries = append(entries, s.bsonToEntry(doc))
	}
	return entries, nil
}

// Get returns the entry with the given ID.
func (s *Store) Get(ctx context.Context, id string) (*briefing.Entry, error) {
	var doc bson.M
	err := s.collection.FindOne(ctx, s.filter(bson.M{"_id": id})).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, briefing.ErrEntryNotFound
		}
		return nil, fmt.Errorf("findOne failed: %w", err)
	}
	return s.bsonToEntry(doc), nil
}

// Remove deletes an entry from the store.
func (s *Store) Remove(ctx context.Context, id string) error {
	result, err := s.collection.DeleteOne(ctx, s.filter(bson.M{"_id": id}))
	if err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}

	if result.DeletedCount == 0 {
		return briefing.ErrEntryNotFound
	}

	return nil
}

// Trim deletes everything except the keep newest entries.
func (s *Store) Trim(ctx context.Context, keep int) error {
	if keep < 0 {
		keep = 0
	}

	// Find the IDs beyond the newest keep entries
	opts := options.Find().
		SetSort(bson.D{{Key: s.timestampField, Value: -1}}).
		SetSkip(int64(keep)).
		SetProjection(bson.M{"_id": 1})

	cursor, err := s.collection.Find(ctx, s.filter(bson.M{}), opts)
	if err != nil {
		return fmt.Errorf("find failed: %w", err)
	}

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return fmt.Errorf("cursor failed: %w", err)
	}
	if len(docs) == 0 {
		return nil
	}

	ids := make(bson.A, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, doc["_id"])
	}

	if _, err := s.collection.DeleteMany(ctx, s.filter(bson.M{"_id": bson.M{"$in": ids}})); err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}
	return nil
}

// filter scopes a query by the configured condition.
func (s *Store) filter(query bson.M) bson.M {
	if s.condition == nil {
		return query
	}
	return bson.M{"$and": []bson.M{query, s.condition}}
}

// bsonToEntry converts a BSON document to an Entry. Missing or mistyped
// fields are left at their zero values.
func (s *Store) bsonToEntry(doc bson.M) *briefing.Entry {
	entry := &briefing.Entry{}

	// Extract _id
	if id, ok := doc["_id"]; ok {
		switch v := id.(type) {
		case string:
			entry.ID = v
		case primitive.ObjectID:
			entry.ID = v.Hex()
		}
	}

	// Extract timestamp
	switch v := doc[s.timestampField].(type) {
	case primitive.DateTime:
		entry.Timestamp = v.Time().UTC()
	case time.Time:
		entry.Timestamp = v.UTC()
	}

	// Extract watchlist
	if tickers, ok := doc[s.watchlistField].(bson.A); ok {
		for _, ticker := range tickers {
			if str, ok := ticker.(string); ok {
				entry.Watchlist = append(entry.Watchlist, str)
			}
		}
	}

	// Extract text
	if text, ok := doc[s.textField].(string); ok {
		entry.Text = text
	}

	return entry
}
