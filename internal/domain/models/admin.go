package models

// DevDataResult is the response of the development data utilities
type DevDataResult struct {
	Message       string         `json:"message" yaml:"message"`
	Organizations int            `json:"organizations,omitempty" yaml:"organizations,omitempty"`
	Users         int            `json:"users,omitempty" yaml:"users,omitempty"`
	Counts        map[string]int `json:"counts,omitempty" yaml:"counts,omitempty"`
}
