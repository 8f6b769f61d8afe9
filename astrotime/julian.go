package astrotime

// Second counts used throughout the calendar and Julian date conversions.
const (
	SecondsPerMinute        = 60
	SecondsPerHour          = 3600
	SecondsPerDay           = 86400
	SecondsPerHalfDay       = 43200
	SecondsPerJulianYear    = 31557600
	SecondsPerJulianCentury = 3155760000

	DaysPerJulianCentury = 36525
)

// Offsets of the standard epochs from J2000, in seconds.
const (
	SecondsBetweenJDAndJ2000    = 211813488000
	SecondsBetweenMJDAndJ2000   = 4453444800
	SecondsBetweenJ1950AndJ2000 = 1577880000
	SecondsBetweenJ1977AndJ2000 = 725803200
)

// Epoch selects the reference epoch of a Julian date projection.
type Epoch int

const (
	EpochJulianDate Epoch = iota
	EpochModifiedJulianDate
	EpochJ1950
	EpochJ2000
)

// Unit selects the granularity of a Julian date projection.
type Unit int

const (
	UnitSeconds Unit = iota
	UnitDays
	UnitCenturies
)
