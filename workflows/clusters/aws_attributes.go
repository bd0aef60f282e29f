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

type AwsAvailability string

const (
	AwsAvailabilityOnDemand         AwsAvailability = "ON_DEMAND"
	AwsAvailabilitySpot             AwsAvailability = "SPOT"
	AwsAvailabilitySpotWithFallback AwsAvailability = "SPOT_WITH_FALLBACK"
)

// AwsAttributes carries the AWS-specific settings of a cluster.
type AwsAttributes struct {
	workflows.Leaf

	Availability        AwsAvailability
	EbsVolumeCount      int
	EbsVolumeIops       int
	EbsVolumeSize       int
	EbsVolumeThroughput int
	EbsVolumeType       EbsVolumeType
	FirstOnDemand       int
	InstanceProfileArn  string
	SpotBidPricePercent int
	ZoneId              string
}

func (a *AwsAttributes) ToSDK() *compute.AwsAttributes {
	return &compute.AwsAttributes{
		Availability:        compute.AwsAvailability(a.Availability),
		EbsVolumeCount:      a.EbsVolumeCount,
		EbsVolumeIops:       a.EbsVolumeIops,
		EbsVolumeSize:       a.EbsVolumeSize,
		EbsVolumeThroughput: a.EbsVolumeThroughput,
		EbsVolumeType:       compute.EbsVolumeType(a.EbsVolumeType),
		FirstOnDemand:       a.FirstOnDemand,
		InstanceProfileArn:  a.InstanceProfileArn,
		SpotBidPricePercent: a.SpotBidPricePercent,
		ZoneId:              a.ZoneId,
	}
}
