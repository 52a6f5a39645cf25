package operations

import "sloth-encode/src/vault"

// zeroSalt is used when deriving a key_hash straight from a passphrase for
// --key on the CLI. The derived key_hash is embedded verbatim in the
// resulting proof (see types.Proof.KeyHash), so the salt need not be secret
// or persisted: it only has to be fixed so the same passphrase always
// derives the same key_hash. Passphrases meant to stay secret across
// sessions should go through the seal/unseal commands instead, which use a
// freshly generated, persisted salt.
var zeroSalt [16]byte

func derivePassphraseKeyHash(passphrase []byte, keyLen int) []byte {
	return vault.DeriveKeyHash(passphrase, zeroSalt, vault.DefaultKDFParams, keyLen)
}
