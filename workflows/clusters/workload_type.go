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

// WorkloadType wraps the cluster's client restrictions.
type WorkloadType struct {
	Clients *ClientsTypes
}

func NewWorkloadType(clients *ClientsTypes) *WorkloadType {
	return &WorkloadType{Clients: clients}
}

func (w *WorkloadType) Children() []workflows.JobNode {
	var children []workflows.JobNode
	if w.Clients != nil {
		children = append(children, w.Clients)
	}
	return children
}

func (w *WorkloadType) ToSDK() *compute.WorkloadType {
	workload := &compute.WorkloadType{}
	if w.Clients != nil {
		workload.Clients = *w.Clients.ToSDK()
	}
	return workload
}
