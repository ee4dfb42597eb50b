package sensitivity

// Neighboring selects which pair of datasets are considered
// "adjacent" for sensitivity purposes (spec §7's neighboring
// definition, carried on PrivacyDefinition in package privacy).
type Neighboring int

const (
	// Substitute: neighboring datasets differ by replacing exactly one
	// record with another. Sensitivity is bound by the full value
	// range (upper - lower) a single record's replacement can shift an
	// aggregate by.
	Substitute Neighboring = iota

	// AddRemove: neighboring datasets differ by adding or removing
	// exactly one record. Sensitivity is bound by the larger of
	// |lower| and |upper|, since the removed/added record can only
	// pull an unbounded-count aggregate towards zero or away from it.
	AddRemove
)
