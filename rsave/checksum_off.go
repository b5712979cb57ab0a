//go:build nochecksum

package rsave

const VerifyChecksums = false
