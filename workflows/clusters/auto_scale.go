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

package clusters

import (
	"github.com/databricks/databricks-sdk-go/service/compute"

	"github.com/jobkit-dev/jobkit-go/workflows"
)

// AutoScale bounds the worker count of an autoscaling cluster.
type AutoScale struct {
	workflows.Leaf

	MinWorkers int
	MaxWorkers int
}

func (a *AutoScale) ToSDK() *compute.AutoScale {
	return &compute.AutoScale{
		MinWorkers: a.MinWorkers,
		MaxWorkers: a.MaxWorkers,
	}
}
