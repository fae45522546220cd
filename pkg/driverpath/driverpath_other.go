//go:build !windows

package driverpath

const driverFileName = "rpl-driver"
