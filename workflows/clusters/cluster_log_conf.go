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

// ClusterLogConf selects where driver and worker logs are delivered.
// At most one destination is expected to be set.
type ClusterLogConf struct {
	Dbfs *DbfsStorageInfo
	S3   *S3StorageInfo
}

func (c *ClusterLogConf) Children() []workflows.JobNode {
	var children []workflows.JobNode
	if c.Dbfs != nil {
		children = append(children, c.Dbfs)
	}
	if c.S3 != nil {
		children = append(children, c.S3)
	}
	return children
}

func (c *ClusterLogConf) ToSDK() *compute.ClusterLogConf {
	conf := &compute.ClusterLogConf{}
	if c.Dbfs != nil {
		conf.Dbfs = c.Dbfs.ToSDK()
	}
	if c.S3 != nil {
		conf.S3 = c.S3.ToSDK()
	}
	return conf
}
