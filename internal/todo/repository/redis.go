package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gogotex/todo-service/internal/todo"
	"github.com/redis/go-redis/v9"
	"github.com/samber/lo"
)

// RedisRepo stores each todo as JSON under "<prefix><hex id>" and keeps insertion
// order in the list "<prefix>ids".
type RedisRepo struct {
	client *redis.Client
	prefix string
}

// NewRedisRepo creates a Redis-backed todo repository. Prefix may be empty.
func NewRedisRepo(client *redis.Client, prefix string) *RedisRepo {
	if prefix == "" {
		prefix = "todo:"
	}
	return &RedisRepo{client: client, prefix: prefix}
}

func (r *RedisRepo) key(id string) string { return r.prefix + id }

func (r *RedisRepo) indexKey() string { return r.prefix + "ids" }

func (r *RedisRepo) Create(ctx context.Context, f todo.Fields) (*todo.Todo, error) {
	if err := f.ValidateCreate(); err != nil {
		return nil, err
	}
	t := todo.New(todo.NewID(), f)
	b, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	id := t.ID.Hex()
	_, err = r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Set(ctx, r.key(id), b, 0)
		p.RPush(ctx, r.indexKey(), id)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("store todo: %w", err)
	}
	return t, nil
}

func (r *RedisRepo) Find(ctx context.Context) ([]*todo.Todo, error) {
	ids, err := r.client.LRange(ctx, r.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	out := []*todo.Todo{}
	if len(ids) == 0 {
		return out, nil
	}
	keys := lo.Map(ids, func(id string, _ int) string { return r.key(id) })
	vals, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}
	for _, v := range vals {
		s, ok := v.(string)
		if !ok {
			// index entry whose document is gone
			continue
		}
		t, err := decode([]byte(s))
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *RedisRepo) FindByID(ctx context.Context, id string) (*todo.Todo, error) {
	oid, err := todo.ParseID(id)
	if err != nil {
		return nil, err
	}
	b, err := r.client.Get(ctx, r.key(oid.Hex())).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return decode(b)
}

// updateScript merges a JSON patch into the stored document on the server, so
// concurrent updates of different attributes both survive. A missing key yields nil
// and is never recreated.
var updateScript = redis.NewScript(`
local cur = redis.call('GET', KEYS[1])
if not cur then
	return false
end
local doc = cjson.decode(cur)
for k, v in pairs(cjson.decode(ARGV[1])) do
	doc[k] = v
end
local out = cjson.encode(doc)
redis.call('SET', KEYS[1], out)
return out
`)

func (r *RedisRepo) FindByIDAndUpdate(ctx context.Context, id string, f todo.Fields) (*todo.Todo, error) {
	oid, err := todo.ParseID(id)
	if err != nil {
		return nil, err
	}
	if err := f.ValidateUpdate(); err != nil {
		return nil, err
	}
	patch, err := json.Marshal(f.SetDocument())
	if err != nil {
		return nil, err
	}
	out, err := updateScript.Run(ctx, r.client, []string{r.key(oid.Hex())}, string(patch)).Text()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("update todo: %w", err)
	}
	return decode([]byte(out))
}

func (r *RedisRepo) FindByIDAndDelete(ctx context.Context, id string) (*todo.Todo, error) {
	oid, err := todo.ParseID(id)
	if err != nil {
		return nil, err
	}
	hex := oid.Hex()
	var get *redis.StringCmd
	_, err = r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		get = p.Get(ctx, r.key(hex))
		p.Del(ctx, r.key(hex))
		p.LRem(ctx, r.indexKey(), 0, hex)
		return nil
	})
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	b, err := get.Bytes()
	if err != nil {
		return nil, err
	}
	return decode(b)
}

func (r *RedisRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func decode(b []byte) (*todo.Todo, error) {
	var t todo.Todo
	if err := json.Unmarshal(b, &t); err != nil {
		return nil, fmt.Errorf("decode todo: %w", err)
	}
	return &t, nil
}
