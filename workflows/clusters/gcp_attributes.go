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

type GcpAvailability string

const (
	GcpAvailabilityOnDemand                GcpAvailability = "ON_DEMAND_GCP"
	GcpAvailabilityPreemptible             GcpAvailability = "PREEMPTIBLE_GCP"
	GcpAvailabilityPreemptibleWithFallback GcpAvailability = "PREEMPTIBLE_WITH_FALLBACK_GCP"
)

// GcpAttributes carries the GCP-specific settings of a cluster.
type GcpAttributes struct {
	workflows.Leaf

	Availability         GcpAvailability
	BootDiskSize         int
	GoogleServiceAccount string
	LocalSsdCount        int
	ZoneId               string
}

func (g *GcpAttributes) ToSDK() *compute.GcpAttributes {
	return &compute.GcpAttributes{
		Availability:         compute.GcpAvailability(g.Availability),
		BootDiskSize:         g.BootDiskSize,
		GoogleServiceAccount: g.GoogleServiceAccount,
		LocalSsdCount:        g.LocalSsdCount,
		ZoneId:               g.ZoneId,
	}
}
