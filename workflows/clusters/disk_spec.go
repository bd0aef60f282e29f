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

type EbsVolumeType string

const (
	EbsVolumeTypeGeneralPurposeSsd      EbsVolumeType = "GENERAL_PURPOSE_SSD"
	EbsVolumeTypeThroughputOptimizedHdd EbsVolumeType = "THROUGHPUT_OPTIMIZED_HDD"
)

type AzureDiskVolumeType string

const (
	AzureDiskVolumeTypePremiumLrs  AzureDiskVolumeType = "PREMIUM_LRS"
	AzureDiskVolumeTypeStandardLrs AzureDiskVolumeType = "STANDARD_LRS"
)

// DiskType selects the volume type of attached disks, per cloud. It is a
// plain value, not a tree node.
type DiskType struct {
	AzureDiskVolumeType AzureDiskVolumeType
	EbsVolumeType       EbsVolumeType
}

func (d *DiskType) ToSDK() *compute.DiskType {
	return &compute.DiskType{
		AzureDiskVolumeType: compute.DiskTypeAzureDiskVolumeType(d.AzureDiskVolumeType),
		EbsVolumeType:       compute.DiskTypeEbsVolumeType(d.EbsVolumeType),
	}
}

// DiskSpec describes the local disks attached to each cluster instance.
type DiskSpec struct {
	workflows.Leaf

	DiskCount      int
	DiskIops       int
	DiskSize       int
	DiskThroughput int
	DiskType       *DiskType
}

// ToSDK maps the disk type only. The count, iops, size and throughput
// mappings are not confirmed against the SDK schema yet and are left
// unset rather than guessed.
func (d *DiskSpec) ToSDK() *compute.DiskSpec {
	spec := &compute.DiskSpec{}
	if d.DiskType != nil {
		spec.DiskType = d.DiskType.ToSDK()
	}
	return spec
}
