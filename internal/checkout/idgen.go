package checkout

import "math/rand/v2"

// RandomID draws five independent decimal digits and collapses them into an
// integer, yielding values in [0, 99999]. Leading zeros collapse ("00042"
// becomes 42), so low values are over-represented and draws can collide.
// Callers that need uniqueness retry on primary-key conflict.
func RandomID() int64 {
	var id int64
	for i := 0; i < 5; i++ {
		id = id*10 + rand.Int64N(10)
	}
	return id
}
