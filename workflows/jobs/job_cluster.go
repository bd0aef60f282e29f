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

package jobs

import (
	sdk "github.com/databricks/databricks-sdk-go/service/jobs"

	"github.com/jobkit-dev/jobkit-go/workflows"
	"github.com/jobkit-dev/jobkit-go/workflows/clusters"
)

// JobCluster declares a cluster shared by the job's tasks under a key.
type JobCluster struct {
	JobClusterKey string
	NewCluster    *clusters.ClusterSpec
}

func NewJobCluster(jobClusterKey string, newCluster *clusters.ClusterSpec) *JobCluster {
	return &JobCluster{JobClusterKey: jobClusterKey, NewCluster: newCluster}
}

func (c *JobCluster) Children() []workflows.JobNode {
	var children []workflows.JobNode
	if c.NewCluster != nil {
		children = append(children, c.NewCluster)
	}
	return children
}

func (c *JobCluster) ToSDK() sdk.JobCluster {
	cluster := sdk.JobCluster{JobClusterKey: c.JobClusterKey}
	if c.NewCluster != nil {
		cluster.NewCluster = c.NewCluster.ToSDK()
	}
	return cluster
}
