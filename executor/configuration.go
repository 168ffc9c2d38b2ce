// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package executor

import (
	"time"

	"github.com/bitmark-inc/prioritytree/avl"
	"github.com/bitmark-inc/prioritytree/fault"
)

// defaults
const (
	DefaultPolicy       = "minimum"
	DefaultMaxRetries   = 3
	DefaultWorkers      = 1
	DefaultRateLimit    = 0 // unlimited
	DefaultBurst        = 1
	DefaultResultExpiry = 300 // seconds
)

// Configuration - settings for an executor
type Configuration struct {
	Policy       string  `gluamapper:"policy" json:"policy"`
	MaxRetries   int     `gluamapper:"max_retries" json:"max_retries"`
	Workers      int     `gluamapper:"workers" json:"workers"`
	RateLimit    float64 `gluamapper:"rate_limit" json:"rate_limit"` // attempts per second
	Burst        int     `gluamapper:"burst" json:"burst"`
	ResultExpiry int     `gluamapper:"result_expiry" json:"result_expiry"` // seconds
}

// DefaultConfiguration - a configuration with every field at its
// default
func DefaultConfiguration() Configuration {
	return Configuration{
		Policy:       DefaultPolicy,
		MaxRetries:   DefaultMaxRetries,
		Workers:      DefaultWorkers,
		RateLimit:    DefaultRateLimit,
		Burst:        DefaultBurst,
		ResultExpiry: DefaultResultExpiry,
	}
}

// validate the configuration and decode the policy
func (c Configuration) validate() (avl.Policy, error) {
	policy, err := avl.ParsePolicy(c.Policy)
	if nil != err {
		return policy, err
	}
	if c.MaxRetries < 1 {
		return policy, fault.ErrInvalidRetries
	}
	if c.Workers < 1 {
		return policy, fault.ErrInvalidWorkers
	}
	if c.RateLimit < 0 {
		return policy, fault.ErrInvalidRateLimit
	}
	if c.RateLimit > 0 && c.Burst < 1 {
		return policy, fault.ErrInvalidBurst
	}
	if c.ResultExpiry < 1 {
		return policy, fault.ErrInvalidExpiry
	}
	return policy, nil
}

func (c Configuration) resultExpiry() time.Duration {
	return time.Duration(c.ResultExpiry) * time.Second
}
