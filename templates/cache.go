package templates

import (
	"context"
	"io"
	"reflect"
	"strings"

	"github.com/dgraph-io/ristretto"
	"github.com/pkg/errors"
	"github.com/twmb/murmur3"

	"github.com/sargassum-world/turboresponse/marshaling"
)

// Cache is a [Renderer] which memoizes the output of another Renderer, keyed on the template names
// and the marshaled template data. Only plain data (strings, numbers, booleans, nil, and slices or
// string-keyed maps of those) is cached; renders with any other values, such as structs, pointers,
// or forms, bypass the cache, since marshalers drop their unexported state. Only wrap renderers
// whose output is fully determined by names and data: the context is not part of the key.
type Cache struct {
	renderer  Renderer
	cache     *ristretto.Cache
	marshaler marshaling.Marshaler
}

type cacheKey struct {
	Names []string       `json:"names"`
	Data  map[string]any `json:"data"`
}

// hashKey hashes marshaled cache keys for ristretto.
func hashKey(key interface{}) (uint64, uint64) {
	switch k := key.(type) {
	default:
		// ristretto only receives keys from Cache.Render, which always passes []byte
		panic(errors.Errorf("unexpected cache key type %T", key))
	case []byte:
		return murmur3.Sum128(k)
	}
}

// plain checks whether the value is fully captured by its marshaled form.
func plain(v reflect.Value) bool {
	switch v.Kind() {
	default:
		return false
	case reflect.Invalid, reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	case reflect.Interface:
		return v.IsNil() || plain(v.Elem())
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if !plain(v.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return false
		}
		for iter := v.MapRange(); iter.Next(); {
			if !plain(iter.Value()) {
				return false
			}
		}
		return true
	}
}

func plainData(data map[string]any) bool {
	for _, value := range data {
		if !plain(reflect.ValueOf(value)) {
			return false
		}
	}
	return true
}

// NewCache wraps the renderer with a cache bounded by the config's MaxCost, in bytes of rendered
// output.
func NewCache(r Renderer, c CacheConfig) (*Cache, error) {
	marshaler, err := marshaling.Named(c.KeyCodec)
	if err != nil {
		return nil, errors.Wrap(err, "couldn't make cache key marshaler")
	}

	const (
		expectedEntrySize = 1024 // bytes
		countersPerEntry  = 10
		minCounters       = 1000
		bufferItems       = 64
	)
	counters := max(c.MaxCost/expectedEntrySize*countersPerEntry, minCounters)
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: counters,
		MaxCost:     c.MaxCost,
		BufferItems: bufferItems,
		KeyToHash:   hashKey,
	})
	if err != nil {
		return nil, errors.Wrap(err, "couldn't make rendered templates cache")
	}
	return &Cache{
		renderer:  r,
		cache:     cache,
		marshaler: marshaler,
	}, nil
}

// Render writes the cached output for the names and data if present, and otherwise renders it
// with the underlying renderer and caches the result. Errors from the underlying renderer are
// returned unchanged and are never cached.
func (c *Cache) Render(
	ctx context.Context, w io.Writer, names []string, data map[string]any,
) error {
	if !plainData(data) {
		return c.renderer.Render(ctx, w, names, data)
	}
	key, err := c.marshaler.Marshal(cacheKey{Names: names, Data: data})
	if err != nil {
		return c.renderer.Render(ctx, w, names, data)
	}
	if cached, ok := c.cache.Get(key); ok {
		_, err = io.WriteString(w, cached.(string))
		return errors.Wrap(err, "couldn't write cached template output")
	}

	var b strings.Builder
	if err = c.renderer.Render(ctx, &b, names, data); err != nil {
		return err
	}
	rendered := b.String()
	c.cache.Set(key, rendered, int64(len(rendered)))
	_, err = io.WriteString(w, rendered)
	return errors.Wrap(err, "couldn't write template output")
}

// Wait blocks until all pending cache writes have been applied.
func (c *Cache) Wait() {
	c.cache.Wait()
}

// Close stops the cache's background goroutines. The Cache should not be used after it's closed.
func (c *Cache) Close() {
	c.cache.Close()
}
