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

type AzureAvailability string

const (
	AzureAvailabilityOnDemand         AzureAvailability = "ON_DEMAND_AZURE"
	AzureAvailabilitySpot             AzureAvailability = "SPOT_AZURE"
	AzureAvailabilitySpotWithFallback AzureAvailability = "SPOT_WITH_FALLBACK_AZURE"
)

// AzureAttributes carries the Azure-specific settings of a cluster.
type AzureAttributes struct {
	Availability     AzureAvailability
	FirstOnDemand    int
	LogAnalyticsInfo *LogAnalyticsInfo
	SpotBidMaxPrice  float64
}

func (a *AzureAttributes) Children() []workflows.JobNode {
	var children []workflows.JobNode
	if a.LogAnalyticsInfo != nil {
		children = append(children, a.LogAnalyticsInfo)
	}
	return children
}

func (a *AzureAttributes) ToSDK() *compute.AzureAttributes {
	attrs := &compute.AzureAttributes{
		Availability:    compute.AzureAvailability(a.Availability),
		FirstOnDemand:   a.FirstOnDemand,
		SpotBidMaxPrice: a.SpotBidMaxPrice,
	}
	if a.LogAnalyticsInfo != nil {
		attrs.LogAnalyticsInfo = a.LogAnalyticsInfo.ToSDK()
	}
	return attrs
}
