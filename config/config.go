package config

// EffectParam is one entry of a structParams or attrParams list: a bare
// name, or a name called with a decay λ and/or a bound attribute name.
type EffectParam struct {
	Name      string
	AttrName  string
	Lambda    float64
	HasLambda bool
}

// Config is the fully parsed, typed form of spec.md §6's configuration
// file.
type Config struct {
	// Structural
	UseIFDSampler      bool
	UseTNTSampler      bool
	UseBorisenkoUpdate bool
	AllowLoops         bool
	ForbidReciprocity  bool
	IsBipartite        bool
	IsDirected         bool
	DebugAssertCache   bool

	// Algorithm constants
	ACAS           float64
	ACAEE          float64
	CompC          float64
	IFDK           float64
	SamplerSteps   int
	Ssteps         int
	EEsteps        int
	EEInnerSteps   int
	Burnin         int
	Interval       int
	SampleSize     int
	NumNodes       int
	NumArcs        int
	MaxCachedPower int

	// Input paths
	ArclistFile  string
	BinattrFile  string
	CatattrFile  string
	ContattrFile string
	SetattrFile  string
	TermFile     string

	// Output prefixes
	ThetaFilePrefix         string
	DzAFilePrefix           string
	SimNetFilePrefix        string
	StatsFile               string
	ObservedStatsFilePrefix string

	// Model
	StructParams []EffectParam
	AttrParams   []EffectParam
}

// Validate checks the cross-field invariants §7 calls "contradictory
// flags": IFD and TNT are mutually exclusive proposal strategies (Basic
// is implied when both are false).
func (c *Config) Validate() error {
	if c.UseIFDSampler && c.UseTNTSampler {
		return ErrContradictoryFlags
	}

	return nil
}
