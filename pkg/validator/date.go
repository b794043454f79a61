package validator

import "time"

// Past reports whether t is before now.
func Past(t time.Time) bool {
	return t.Before(time.Now())
}

// Future reports whether t is after now.
func Future(t time.Time) bool {
	return t.After(time.Now())
}

// MinAge reports whether someone born at birthdate is at least years old today.
func MinAge(years int) func(time.Time) bool {
	return func(birthdate time.Time) bool {
		return ageAt(birthdate, time.Now()) >= years
	}
}

// AgeBetween reports whether the age at birthdate is within [min, max] years.
func AgeBetween(min, max int) func(time.Time) bool {
	return func(birthdate time.Time) bool {
		age := ageAt(birthdate, time.Now())
		return age >= min && age <= max
	}
}

func ageAt(birthdate, now time.Time) int {
	age := now.Year() - birthdate.Year()
	if now.Month() < birthdate.Month() ||
		(now.Month() == birthdate.Month() && now.Day() < birthdate.Day()) {
		age--
	}
	return age
}
