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

type DataSecurityMode string

const (
	DataSecurityModeNone          DataSecurityMode = "NONE"
	DataSecurityModeSingleUser    DataSecurityMode = "SINGLE_USER"
	DataSecurityModeUserIsolation DataSecurityMode = "USER_ISOLATION"
)

type RuntimeEngine string

const (
	RuntimeEngineStandard RuntimeEngine = "STANDARD"
	RuntimeEnginePhoton   RuntimeEngine = "PHOTON"
)

// ClusterSpec describes a cluster created for the lifetime of a job run
// (the new_cluster of a task or job cluster).
type ClusterSpec struct {
	ApplyPolicyDefaultValues  bool
	Autoscale                 *AutoScale
	AutoterminationMinutes    int
	AwsAttributes             *AwsAttributes
	AzureAttributes           *AzureAttributes
	ClusterLogConf            *ClusterLogConf
	ClusterName               string
	CustomTags                map[string]string
	DataSecurityMode          DataSecurityMode
	DockerImage               *DockerImage
	DriverInstancePoolId      string
	DriverNodeTypeId          string
	EnableElasticDisk         bool
	EnableLocalDiskEncryption bool
	GcpAttributes             *GcpAttributes
	InitScripts               []*InitScriptInfo
	InstancePoolId            string
	NodeTypeId                string
	NumWorkers                int
	PolicyId                  string
	RuntimeEngine             RuntimeEngine
	SingleUserName            string
	SparkConf                 map[string]string
	SparkEnvVars              map[string]string
	SparkVersion              string
	SshPublicKeys             []string
	WorkloadType              *WorkloadType
}

func NewClusterSpec(sparkVersion string) *ClusterSpec {
	return &ClusterSpec{SparkVersion: sparkVersion}
}

func (c *ClusterSpec) Children() []workflows.JobNode {
	var children []workflows.JobNode
	if c.Autoscale != nil {
		children = append(children, c.Autoscale)
	}
	if c.AwsAttributes != nil {
		children = append(children, c.AwsAttributes)
	}
	if c.AzureAttributes != nil {
		children = append(children, c.AzureAttributes)
	}
	if c.ClusterLogConf != nil {
		children = append(children, c.ClusterLogConf)
	}
	if c.DockerImage != nil {
		children = append(children, c.DockerImage)
	}
	if c.GcpAttributes != nil {
		children = append(children, c.GcpAttributes)
	}
	for _, script := range c.InitScripts {
		children = append(children, script)
	}
	if c.WorkloadType != nil {
		children = append(children, c.WorkloadType)
	}
	return children
}

func (c *ClusterSpec) ToSDK() compute.ClusterSpec {
	spec := compute.ClusterSpec{
		ApplyPolicyDefaultValues:  c.ApplyPolicyDefaultValues,
		AutoterminationMinutes:    c.AutoterminationMinutes,
		ClusterName:               c.ClusterName,
		CustomTags:                c.CustomTags,
		DataSecurityMode:          compute.DataSecurityMode(c.DataSecurityMode),
		DriverInstancePoolId:      c.DriverInstancePoolId,
		DriverNodeTypeId:          c.DriverNodeTypeId,
		EnableElasticDisk:         c.EnableElasticDisk,
		EnableLocalDiskEncryption: c.EnableLocalDiskEncryption,
		InstancePoolId:            c.InstancePoolId,
		NodeTypeId:                c.NodeTypeId,
		NumWorkers:                c.NumWorkers,
		PolicyId:                  c.PolicyId,
		RuntimeEngine:             compute.RuntimeEngine(c.RuntimeEngine),
		SingleUserName:            c.SingleUserName,
		SparkConf:                 c.SparkConf,
		SparkEnvVars:              c.SparkEnvVars,
		SparkVersion:              c.SparkVersion,
		SshPublicKeys:             c.SshPublicKeys,
	}
	if c.Autoscale != nil {
		spec.Autoscale = c.Autoscale.ToSDK()
	}
	if c.AwsAttributes != nil {
		spec.AwsAttributes = c.AwsAttributes.ToSDK()
	}
	if c.AzureAttributes != nil {
		spec.AzureAttributes = c.AzureAttributes.ToSDK()
	}
	if c.ClusterLogConf != nil {
		spec.ClusterLogConf = c.ClusterLogConf.ToSDK()
	}
	if c.DockerImage != nil {
		spec.DockerImage = c.DockerImage.ToSDK()
	}
	if c.GcpAttributes != nil {
		spec.GcpAttributes = c.GcpAttributes.ToSDK()
	}
	for _, script := range c.InitScripts {
		spec.InitScripts = append(spec.InitScripts, script.ToSDK())
	}
	if c.WorkloadType != nil {
		spec.WorkloadType = c.WorkloadType.ToSDK()
	}
	return spec
}
