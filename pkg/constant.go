package pkg

// side labels of an assignment. SIDE_A is the zero value, so a fresh assignment is all side A.
const (
	SIDE_A = false
	SIDE_B = true
)

const (
	DEFAULT_ALPHA             = 0.5
	DEFAULT_GRASP_ITERATIONS  = 50
	DEFAULT_RANDOMIZED_TRIALS = 100
	DEFAULT_LOCAL_SAMPLES     = 1
	DEFAULT_SEED              = 1

	// used by the report layer when no reference value is known for an instance
	UNKNOWN_BEST = "N/A"
)
