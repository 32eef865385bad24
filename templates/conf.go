package templates

import (
	"io/fs"
	"slices"

	"github.com/pkg/errors"

	"github.com/sargassum-world/turboresponse/env"
	"github.com/sargassum-world/turboresponse/marshaling"
)

const envPrefix = "TEMPLATES_"

type CacheConfig struct {
	Enabled  bool
	MaxCost  int64
	KeyCodec string
}

type Config struct {
	PartialPrefix string
	// DefaultNames is the ordered list of candidate template names used by callers which don't
	// provide their own names. Nothing is looked up implicitly: callers pass the result of
	// [Config.Names] to the renderer.
	DefaultNames []string
	Pattern      string
	Cache        CacheConfig
}

func GetConfig() (c Config, err error) {
	c.PartialPrefix = env.GetString(envPrefix+"PARTIALPREFIX", DefaultPartialPrefix)
	c.DefaultNames = env.GetStrings(envPrefix+"DEFAULTNAMES", nil)
	c.Pattern = env.GetString(envPrefix+"PATTERN", "**/*.html")

	c.Cache, err = getCacheConfig()
	if err != nil {
		return Config{}, errors.Wrap(err, "couldn't make templates cache config")
	}
	return c, nil
}

func getCacheConfig() (c CacheConfig, err error) {
	c.Enabled, err = env.GetBool(envPrefix + "CACHE_ENABLED")
	if err != nil {
		return CacheConfig{}, errors.Wrap(err, "couldn't make cache enablement config")
	}

	const defaultMaxCost = 64 * 1024 * 1024 // default: 64 MiB
	c.MaxCost, err = env.GetInt64(envPrefix+"CACHE_MAXCOST", defaultMaxCost)
	if err != nil {
		return CacheConfig{}, errors.Wrap(err, "couldn't make cache max cost config")
	}
	if c.MaxCost <= 0 {
		return CacheConfig{}, errors.Errorf("cache max cost %d must be positive", c.MaxCost)
	}

	c.KeyCodec = env.GetString(envPrefix+"CACHE_KEYCODEC", marshaling.NameMessagePack)
	return c, nil
}

// Resolver returns a partial template name resolver using the configured prefix.
func (c Config) Resolver() Resolver {
	return NewResolver(c.PartialPrefix)
}

// Names returns a copy of names, or of the configured default names if names is empty.
func (c Config) Names(names ...string) []string {
	if len(names) == 0 {
		return slices.Clone(c.DefaultNames)
	}
	return slices.Clone(names)
}

// NewRenderer loads an [Engine] from the templates in fsys matching the configured pattern, and
// wraps it in a [Cache] if caching is enabled.
func NewRenderer(fsys fs.FS, c Config, opts ...EngineOption) (Renderer, error) {
	engine, err := NewEngine(fsys, c.Pattern, opts...)
	if err != nil {
		return nil, err
	}
	if !c.Cache.Enabled {
		return engine, nil
	}
	cache, err := NewCache(engine, c.Cache)
	if err != nil {
		return nil, err
	}
	return cache, nil
}
