package canon

// Options control canonicalization. The zero value is the default.
type Options struct {
	// SortThreadFlowLocations sorts the locations of each thread flow.
	// Their order is otherwise taken to be the execution order.
	SortThreadFlowLocations bool `yaml:"sortThreadFlowLocations" json:"sortThreadFlowLocations"`
	// KeepResultOrder leaves the results of each run in their original
	// order. Their contents are still canonicalized.
	KeepResultOrder bool `yaml:"keepResultOrder" json:"keepResultOrder"`
}

type Option func(*Options)

func SortThreadFlowLocations(v bool) Option {
	return func(o *Options) { o.SortThreadFlowLocations = v }
}

func KeepResultOrder(v bool) Option {
	return func(o *Options) { o.KeepResultOrder = v }
}

// WithOptions replaces all options with o.
func WithOptions(o Options) Option {
	return func(p *Options) { *p = o }
}

func mkOptions(opts []Option) *Options {
	res := &Options{}
	for _, opt := range opts {
		opt(res)
	}
	return res
}
