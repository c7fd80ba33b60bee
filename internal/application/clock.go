package application

import "time"

// Clock abstracts time so TTLs and cooldowns can be tested without sleeping.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now().UTC() }
