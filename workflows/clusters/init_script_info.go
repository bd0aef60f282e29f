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

// InitScriptInfo points at one init script to run during cluster startup.
// At most one location is expected to be set.
type InitScriptInfo struct {
	Dbfs      *DbfsStorageInfo
	S3        *S3StorageInfo
	Volumes   *VolumesStorageInfo
	Workspace *WorkspaceStorageInfo
}

func (i *InitScriptInfo) Children() []workflows.JobNode {
	var children []workflows.JobNode
	if i.Dbfs != nil {
		children = append(children, i.Dbfs)
	}
	if i.S3 != nil {
		children = append(children, i.S3)
	}
	if i.Volumes != nil {
		children = append(children, i.Volumes)
	}
	if i.Workspace != nil {
		children = append(children, i.Workspace)
	}
	return children
}

func (i *InitScriptInfo) ToSDK() compute.InitScriptInfo {
	info := compute.InitScriptInfo{}
	if i.Dbfs != nil {
		info.Dbfs = i.Dbfs.ToSDK()
	}
	if i.S3 != nil {
		info.S3 = i.S3.ToSDK()
	}
	if i.Volumes != nil {
		info.Volumes = i.Volumes.ToSDK()
	}
	if i.Workspace != nil {
		info.Workspace = i.Workspace.ToSDK()
	}
	return info
}
