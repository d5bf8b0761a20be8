// Package types defines the shared interfaces and value types used across
// stagehand's packages.
//
// Keeping them here avoids import cycles between the filesystem, classpath,
// and loader packages, and gives tests a single place to find the contracts
// they need to fake.
package types
