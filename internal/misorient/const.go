package misorient

const (
	SymmetryDecimals = 6     // cubic operators are rounded to this many decimals
	SymmetryOrder    = 24    // proper rotations of the cubic (octahedral) group
	MaxAngleDeg      = 180.0 // disorientation search starts here
	SingularEps      = 1e-12 // |det| relative to the product of row norms at or below this is singular
	RotationTol      = 1e-6  // tolerance used by IsRotation
	ConfigPath       = "pairs/config.json"
	PNGDisabled      = "-" // Options.PNGOut value that suppresses the plot
	Precision        = 2   // decimals in text reports
	PNGSize          = 400
	Lang             = "en"
	FormatText       = "text"
	FormatJSON       = "json"
)
