package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

const (
	directoryCollection = "directory_users"
	countersCollection  = "counters"
	mongoTimeout        = 10 * time.Second
)

// MongoConfig captures the minimal settings for the Mongo-backed directory.
type MongoConfig struct {
	URI      string
	Database string
}

// MongoDirectory persists the fake gateway's directory in MongoDB so seeded
// and registered users survive restarts.
type MongoDirectory struct {
	coll     *mongo.Collection
	counters *mongo.Collection
}

// ConnectMongo establishes a client, verifies connectivity with a ping, and
// returns the directory bound to the configured database.
func ConnectMongo(ctx context.Context, cfg MongoConfig) (*MongoDirectory, error) {
	connectCtx, cancel := context.WithTimeout(ctx, mongoTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(cfg.Database)
	return &MongoDirectory{
		coll:     db.Collection(directoryCollection),
		counters: db.Collection(countersCollection),
	}, nil
}

func (d *MongoDirectory) Authenticate(ctx context.Context, email, password string) (*User, error) {
	var u User
	err := d.coll.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrBadCredentials
	}
	return &u, nil
}

func (d *MongoDirectory) CreateRequester(ctx context.Context, first, last, email, password string) (*User, error) {
	email = strings.ToLower(email)

	if err := d.coll.FindOne(ctx, bson.M{"email": email}).Err(); err == nil {
		return nil, ErrExists
	} else if err != mongo.ErrNoDocuments {
		return nil, fmt.Errorf("check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	id, err := d.nextID(ctx)
	if err != nil {
		return nil, err
	}

	u := User{
		ID:           id,
		FirstName:    first,
		LastName:     last,
		Email:        email,
		Username:     strings.SplitN(email, "@", 2)[0],
		Role:         RoleUser,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := d.coll.InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &u, nil
}

func (d *MongoDirectory) List(ctx context.Context, q ListQuery) ([]User, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = 10
	}
	page := q.Page
	if page < 1 {
		page = 1
	}

	filter := bson.M{}
	if len(q.Roles) > 0 {
		filter["role"] = bson.M{"$in": q.Roles}
	}
	if q.Query != "" {
		pattern := bson.M{"$regex": q.Query, "$options": "i"}
		filter["$or"] = bson.A{
			bson.M{"first_name": pattern},
			bson.M{"last_name": pattern},
			bson.M{"email": pattern},
			bson.M{"username": pattern},
		}
	}

	order := 1
	if q.SortDesc {
		order = -1
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: order}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cur, err := d.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cur.Close(ctx)

	users := []User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

func (d *MongoDirectory) FindByID(ctx context.Context, id int64) (*User, error) {
	var u User
	err := d.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}

// nextID atomically increments the directory id counter.
func (d *MongoDirectory) nextID(ctx context.Context) (int64, error) {
	var doc struct {
		Seq int64 `bson:"seq"`
	}
	err := d.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": "directory_users"},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("next id: %w", err)
	}
	return doc.Seq, nil
}
