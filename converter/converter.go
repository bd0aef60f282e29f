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

// Package converter fans a set of job definition trees out over a shared
// goroutine pool and collects their SDK conversions. Conversion itself is
// pure and touches no shared state, so trees may be converted concurrently.
package converter

import (
	"fmt"
	"runtime/debug"
	"sort"
	"strings"
	"sync"

	sdk "github.com/databricks/databricks-sdk-go/service/jobs"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/atomic"

	"github.com/jobkit-dev/jobkit-go/config"
	"github.com/jobkit-dev/jobkit-go/logger"
	"github.com/jobkit-dev/jobkit-go/workflows/jobs"
)

var (
	converter *Converter
	once      sync.Once
)

// GetConverter returns the process-wide converter backed by the shared
// pool sized by config.
func GetConverter() *Converter {
	once.Do(func() {
		converter = newConverter()
	})
	return converter
}

type Converter struct {
	pool      *ants.Pool
	failFast  bool
	submitted *atomic.Int64
	converted *atomic.Int64
}

func newConverter() *Converter {
	gopool, _ := ants.NewPool(
		int(config.GetConverterConfig().ConvertPoolSize()),
		ants.WithExpiryDuration(config.GetConverterConfig().ConvertPoolExpiry()),
		ants.WithPanicHandler(func(i interface{}) {
			logger.Errorf("Catch panic with PanicHandler in converter pool, %v\n%s", i, debug.Stack())
		}))
	return &Converter{
		pool:      gopool,
		failFast:  config.GetConverterConfig().FailFast(),
		submitted: atomic.NewInt64(0),
		converted: atomic.NewInt64(0),
	}
}

// ConvertAll converts every named job definition and returns the results
// keyed by the same names. The result is independent of pool scheduling
// order. A job without a definition aborts the batch when the converter
// runs fail-fast; otherwise the remaining jobs are still converted and
// every invalid name is reported in the returned error.
func (c *Converter) ConvertAll(defs map[string]*jobs.JobSettings) (map[string]sdk.JobSettings, error) {
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		invalid []string
		out     = make(map[string]sdk.JobSettings, len(defs))
	)
	for name, def := range defs {
		if def == nil {
			if c.failFast {
				return nil, fmt.Errorf("job %q has no definition", name)
			}
			invalid = append(invalid, name)
			continue
		}
		name, def := name, def
		wg.Add(1)
		c.submitted.Add(1)
		if err := c.pool.Submit(func() {
			defer wg.Done()
			settings := def.ToSDK()
			mu.Lock()
			out[name] = settings
			mu.Unlock()
			c.converted.Add(1)
			logger.Debugf("converted job %s with %d tasks", name, len(settings.Tasks))
		}); err != nil {
			wg.Done()
			return nil, fmt.Errorf("submit conversion of job %s failed, err=%s", name, err.Error())
		}
	}
	wg.Wait()
	if len(invalid) > 0 {
		sort.Strings(invalid)
		return out, fmt.Errorf("jobs without definitions: %s", strings.Join(invalid, ", "))
	}
	return out, nil
}

// Submitted returns the number of conversions handed to the pool since
// process start.
func (c *Converter) Submitted() int64 {
	return c.submitted.Load()
}

// Converted returns the number of conversions completed since process
// start.
func (c *Converter) Converted() int64 {
	return c.converted.Load()
}

// Release tears down the shared pool. Only meant for process shutdown.
func (c *Converter) Release() {
	c.pool.Release()
}
