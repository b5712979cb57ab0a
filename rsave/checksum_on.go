//go:build !nochecksum

package rsave

// VerifyChecksums is the default of Config.VerifyChecksums. Build with
// the nochecksum tag to turn it off.
const VerifyChecksums = true
