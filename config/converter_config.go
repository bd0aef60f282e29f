/*
 * Copyright (c) 2024 The jobkit-go Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package config

import (
	"sync"
	"time"

	"github.com/jobkit-dev/jobkit-go/internal/constants"
)

var (
	converterConfig *ConverterConfig
	once            sync.Once
)

type Option func(*ConverterConfig)

func WithConvertPoolSize(convertPoolSize int32) Option {
	return func(config *ConverterConfig) {
		config.convertPoolSize = convertPoolSize
	}
}

func WithConvertPoolExpiry(convertPoolExpiry time.Duration) Option {
	return func(config *ConverterConfig) {
		config.convertPoolExpiry = convertPoolExpiry
	}
}

// WithFailFast controls batch conversion on invalid input. When enabled
// (the default) the first job without a definition aborts the batch;
// when disabled the remaining jobs are still converted and every invalid
// name is reported in a single error.
func WithFailFast(failFast bool) Option {
	return func(config *ConverterConfig) {
		config.failFast = failFast
	}
}

// NewConverterConfig initializes the process-wide converter configuration.
// Only the first call takes effect.
func NewConverterConfig(opts ...Option) *ConverterConfig {
	once.Do(func() {
		converterConfig = defaultConverterConfig()
		for _, opt := range opts {
			opt(converterConfig)
		}
	})
	return converterConfig
}

func GetConverterConfig() *ConverterConfig {
	if converterConfig != nil {
		return converterConfig
	}
	return defaultConverterConfig()
}

type ConverterConfig struct {
	convertPoolSize   int32
	convertPoolExpiry time.Duration
	failFast          bool
}

func (c *ConverterConfig) ConvertPoolSize() int32 {
	return c.convertPoolSize
}

func (c *ConverterConfig) ConvertPoolExpiry() time.Duration {
	return c.convertPoolExpiry
}

func (c *ConverterConfig) FailFast() bool {
	return c.failFast
}

func defaultConverterConfig() *ConverterConfig {
	return &ConverterConfig{
		convertPoolSize:   constants.ConvertPoolSizeDefault,
		convertPoolExpiry: constants.ConvertPoolExpiryDefault,
		failFast:          true,
	}
}
