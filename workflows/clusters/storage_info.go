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

// DbfsStorageInfo is a dbfs:/ destination for logs or init scripts.
type DbfsStorageInfo struct {
	workflows.Leaf

	Destination string
}

func NewDbfsStorageInfo(destination string) *DbfsStorageInfo {
	return &DbfsStorageInfo{Destination: destination}
}

func (s *DbfsStorageInfo) ToSDK() *compute.DbfsStorageInfo {
	return &compute.DbfsStorageInfo{Destination: s.Destination}
}

// S3StorageInfo is an s3:// destination for logs or init scripts.
type S3StorageInfo struct {
	workflows.Leaf

	Destination      string
	Region           string
	Endpoint         string
	EnableEncryption bool
	EncryptionType   string
	KmsKey           string
	CannedAcl        string
}

func NewS3StorageInfo(destination string) *S3StorageInfo {
	return &S3StorageInfo{Destination: destination}
}

func (s *S3StorageInfo) ToSDK() *compute.S3StorageInfo {
	return &compute.S3StorageInfo{
		Destination:      s.Destination,
		Region:           s.Region,
		Endpoint:         s.Endpoint,
		EnableEncryption: s.EnableEncryption,
		EncryptionType:   s.EncryptionType,
		KmsKey:           s.KmsKey,
		CannedAcl:        s.CannedAcl,
	}
}

// VolumesStorageInfo is a Unity Catalog volume destination.
type VolumesStorageInfo struct {
	workflows.Leaf

	Destination string
}

func NewVolumesStorageInfo(destination string) *VolumesStorageInfo {
	return &VolumesStorageInfo{Destination: destination}
}

func (s *VolumesStorageInfo) ToSDK() *compute.VolumesStorageInfo {
	return &compute.VolumesStorageInfo{Destination: s.Destination}
}

// WorkspaceStorageInfo is a workspace file destination.
type WorkspaceStorageInfo struct {
	workflows.Leaf

	Destination string
}

func NewWorkspaceStorageInfo(destination string) *WorkspaceStorageInfo {
	return &WorkspaceStorageInfo{Destination: destination}
}

func (s *WorkspaceStorageInfo) ToSDK() *compute.WorkspaceStorageInfo {
	return &compute.WorkspaceStorageInfo{Destination: s.Destination}
}
