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
	"testing"

	"github.com/databricks/databricks-sdk-go/service/compute"
	"github.com/stretchr/testify/assert"

	"github.com/jobkit-dev/jobkit-go/workflows"
)

func TestDiskSpecIsLeaf(t *testing.T) {
	spec := &DiskSpec{
		DiskCount: 4,
		DiskSize:  100,
		DiskType:  &DiskType{EbsVolumeType: EbsVolumeTypeGeneralPurposeSsd},
	}
	assert.Empty(t, spec.Children())
}

func TestDiskSpecMapsDiskTypeOnly(t *testing.T) {
	spec := &DiskSpec{
		DiskCount:      4,
		DiskIops:       3000,
		DiskSize:       100,
		DiskThroughput: 125,
		DiskType:       &DiskType{EbsVolumeType: EbsVolumeTypeGeneralPurposeSsd},
	}

	got := spec.ToSDK()
	assert.Equal(t, compute.DiskTypeEbsVolumeType("GENERAL_PURPOSE_SSD"), got.DiskType.EbsVolumeType)
	// The remaining mappings are intentionally absent.
	assert.Zero(t, got.DiskCount)
	assert.Zero(t, got.DiskIops)
	assert.Zero(t, got.DiskSize)
	assert.Zero(t, got.DiskThroughput)
}

func TestDiskSpecWithoutTypeYieldsDefaults(t *testing.T) {
	assert.Equal(t, &compute.DiskSpec{}, (&DiskSpec{DiskCount: 2}).ToSDK())
}

func TestClientsTypesUnmapped(t *testing.T) {
	c := NewClientsTypes(true)
	c.Jobs = true

	assert.Empty(t, c.Children())
	assert.Equal(t, &compute.ClientsTypes{}, c.ToSDK())
}

func TestLogAnalyticsInfoUnmapped(t *testing.T) {
	info := &LogAnalyticsInfo{
		LogAnalyticsPrimaryKey:  "key",
		LogAnalyticsWorkspaceId: "workspace",
	}

	assert.Empty(t, info.Children())
	assert.Equal(t, &compute.LogAnalyticsInfo{}, info.ToSDK())
}

func TestAzureAttributesChildren(t *testing.T) {
	attrs := &AzureAttributes{}
	assert.Empty(t, attrs.Children())

	attrs.LogAnalyticsInfo = &LogAnalyticsInfo{LogAnalyticsWorkspaceId: "w"}
	children := attrs.Children()
	assert.Len(t, children, 1)
	assert.Same(t, attrs.LogAnalyticsInfo, children[0].(*LogAnalyticsInfo))
}

func TestClusterSpecChildrenOrder(t *testing.T) {
	spec := NewClusterSpec("13.3.x-scala2.12")
	spec.Autoscale = &AutoScale{MinWorkers: 1, MaxWorkers: 8}
	spec.AzureAttributes = &AzureAttributes{Availability: AzureAvailabilitySpot}
	spec.InitScripts = []*InitScriptInfo{
		{Workspace: NewWorkspaceStorageInfo("/init/a.sh")},
		{Volumes: NewVolumesStorageInfo("/Volumes/init/b.sh")},
	}
	spec.WorkloadType = NewWorkloadType(NewClientsTypes(true))

	children := spec.Children()
	assert.Equal(t, []workflows.JobNode{
		spec.Autoscale,
		spec.AzureAttributes,
		spec.InitScripts[0],
		spec.InitScripts[1],
		spec.WorkloadType,
	}, children)
}

func TestClusterSpecToSDK(t *testing.T) {
	spec := NewClusterSpec("13.3.x-scala2.12")
	spec.ClusterName = "etl"
	spec.NodeTypeId = "i3.xlarge"
	spec.NumWorkers = 2
	spec.SparkConf = map[string]string{"spark.speculation": "true"}
	spec.Autoscale = &AutoScale{MinWorkers: 1, MaxWorkers: 8}
	spec.ClusterLogConf = &ClusterLogConf{Dbfs: NewDbfsStorageInfo("dbfs:/logs")}
	spec.DockerImage = NewDockerImage("repo/image:tag")

	got := spec.ToSDK()
	assert.Equal(t, "13.3.x-scala2.12", got.SparkVersion)
	assert.Equal(t, "etl", got.ClusterName)
	assert.Equal(t, "i3.xlarge", got.NodeTypeId)
	assert.Equal(t, 2, got.NumWorkers)
	assert.Equal(t, map[string]string{"spark.speculation": "true"}, got.SparkConf)
	assert.Equal(t, &compute.AutoScale{MinWorkers: 1, MaxWorkers: 8}, got.Autoscale)
	assert.Equal(t, "dbfs:/logs", got.ClusterLogConf.Dbfs.Destination)
	assert.Equal(t, "repo/image:tag", got.DockerImage.Url)
}

func TestInitScriptInfoChildren(t *testing.T) {
	info := &InitScriptInfo{
		S3:        NewS3StorageInfo("s3://bucket/init.sh"),
		Workspace: NewWorkspaceStorageInfo("/init.sh"),
	}

	children := info.Children()
	assert.Len(t, children, 2)
	assert.Same(t, info.S3, children[0].(*S3StorageInfo))
	assert.Same(t, info.Workspace, children[1].(*WorkspaceStorageInfo))
}

func TestAwsAttributesToSDK(t *testing.T) {
	attrs := &AwsAttributes{
		Availability:       AwsAvailabilitySpotWithFallback,
		EbsVolumeCount:     2,
		EbsVolumeSize:      100,
		EbsVolumeType:      EbsVolumeTypeThroughputOptimizedHdd,
		FirstOnDemand:      1,
		InstanceProfileArn: "arn:aws:iam::123:instance-profile/p",
		ZoneId:             "us-east-1a",
	}

	got := attrs.ToSDK()
	assert.Equal(t, compute.AwsAvailability("SPOT_WITH_FALLBACK"), got.Availability)
	assert.Equal(t, 2, got.EbsVolumeCount)
	assert.Equal(t, compute.EbsVolumeType("THROUGHPUT_OPTIMIZED_HDD"), got.EbsVolumeType)
	assert.Equal(t, "us-east-1a", got.ZoneId)
}

func TestConversionIsDeterministic(t *testing.T) {
	spec := NewClusterSpec("13.3.x-scala2.12")
	spec.Autoscale = &AutoScale{MinWorkers: 1, MaxWorkers: 8}
	spec.AzureAttributes = &AzureAttributes{LogAnalyticsInfo: &LogAnalyticsInfo{}}

	assert.Equal(t, spec.ToSDK(), spec.ToSDK())
}
