// Command realign-devtoken mints access tokens for running the realignment
// service locally without the identity provider.
//
//	realign-devtoken -jwks > jwks.json
//	REALIGN_JWKS="$(cat jwks.json)" go run ./cmd/realign
//	realign-devtoken -sub user-1 -email dean@college.test
//
// The signing key is kept in -key and created on first use.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"
	"time"

	"github.com/northpath/realign/pkg/cryptox"
	"github.com/northpath/realign/pkg/jwtx"
	"github.com/northpath/realign/pkg/realignsdk"
)

func main() {
	var (
		keyFile  = flag.String("key", "devtoken.pem", "Ed25519 PKCS8 key file, created if missing")
		kid      = flag.String("kid", "dev-key", "key id placed in the token header and JWKS")
		issuer   = flag.String("iss", "northpath-id", "issuer claim, must match REALIGN_ISSUER")
		audience = flag.String("aud", "realign", "audience claim, must match REALIGN_AUDIENCE")
		subject  = flag.String("sub", "dev-user", "user id")
		email    = flag.String("email", "dev@college.test", "user email")
		scope    = flag.String("scope", realignsdk.ScopeRead+" "+realignsdk.ScopeWrite, "space separated scopes")
		ttl      = flag.Duration("ttl", time.Hour, "token lifetime")
		jwks     = flag.Bool("jwks", false, "print the JWKS for the key instead of a token")
	)
	flag.Parse()

	signer, err := loadSigner(*keyFile, *kid)
	if err != nil {
		log.Fatalf("failed to load signing key: %v", err)
	}

	if *jwks {
		out, err := json.Marshal(jwtx.JWKS{Keys: []jwtx.JWK{signer.PublicJWK()}})
		if err != nil {
			log.Fatalf("failed to encode jwks: %v", err)
		}
		fmt.Println(string(out))
		return
	}

	claims := jwtx.NewAccessClaims(
		*subject, *email, *email, strings.Fields(*scope),
		*issuer, []string{*audience},
		*ttl, time.Now(),
	)
	token, err := signer.Sign(claims)
	if err != nil {
		log.Fatalf("failed to sign token: %v", err)
	}
	fmt.Println(token)
}

func loadSigner(path, kid string) (*jwtx.EdDSASigner, error) {
	pemKey, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		pemKey, err = cryptox.GenerateEd25519Key()
		if err != nil {
			return nil, err
		}
		if err := os.WriteFile(path, pemKey, 0o600); err != nil {
			return nil, err
		}
		log.Printf("created signing key %s", path)
	} else if err != nil {
		return nil, err
	}
	return jwtx.NewEdDSASignerFromPEM(kid, pemKey)
}
