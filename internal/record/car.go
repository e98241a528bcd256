package record

import (
	"encoding/json"
	"fmt"
)

// Insurance premiums by vehicle age.
const (
	premiumAgeLimit = 5
	premiumNew      = 500
	premiumOld      = 1000
)

// CarInfo describes a car. Its year may not be later than the current
// calendar year, checked against the clock at construction time.
type CarInfo struct {
	brand string
	model string
	year  int
}

type carFields struct {
	Brand string `json:"brand"`
	Model string `json:"model"`
	Year  int    `json:"year" validate:"notfuture"`
}

// NewCarInfo records a car. year must not be after CurrentYear().
func NewCarInfo(brand, model string, year int) (*CarInfo, error) {
	return construct("car info", carFields{Brand: brand, Model: model, Year: year},
		func(f carFields) *CarInfo {
			return &CarInfo{brand: f.Brand, model: f.Model, year: f.Year}
		})
}

// Brand, Model and Year read the car's fields.
func (c *CarInfo) Brand() string { return c.brand }
func (c *CarInfo) Model() string { return c.model }
func (c *CarInfo) Year() int     { return c.year }

// Info summarises the car in one line.
func (c *CarInfo) Info() string {
	return fmt.Sprintf("car name is %s, model %s and published year %d", c.brand, c.model, c.year)
}

// Age is the car's age in whole calendar years, measured against the same
// clock the year invariant uses.
func (c *CarInfo) Age() int {
	return CurrentYear() - c.year
}

// InsuranceAmount is the yearly premium: 1000 for cars older than 5 years,
// 500 otherwise.
func (c *CarInfo) InsuranceAmount() int64 {
	if c.Age() > premiumAgeLimit {
		return premiumOld
	}
	return premiumNew
}

// MarshalJSON exposes the car's fields for reporting. There is no
// UnmarshalJSON: cars are only ever built through NewCarInfo.
func (c *CarInfo) MarshalJSON() ([]byte, error) {
	return json.Marshal(carFields{Brand: c.brand, Model: c.model, Year: c.year})
}
