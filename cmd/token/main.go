// Command token mints an HS256 bearer token accepted by the server when
// AUTH_PROVIDER=jwt. Defaults come from the AUTH_ environment variables.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/go-transactions/internal/config"
	"github.com/MKhiriev/go-transactions/internal/logger"
	"github.com/MKhiriev/go-transactions/internal/utils"
)

func main() {
	log := logger.NewLogger("transactions-token")

	auth, err := config.GetAuthConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	fs := flag.NewFlagSet("token", flag.ExitOnError)
	uid := fs.String("uid", "", "caller uid to put into the sub claim")
	signKey := fs.String("sign-key", auth.TokenSignKey, "HMAC signing key")
	issuer := fs.String("issuer", auth.TokenIssuer, "token issuer")
	duration := fs.Duration("duration", auth.TokenDuration, "token lifetime")
	_ = fs.Parse(os.Args[1:])

	token, err := utils.GenerateJWTToken(*issuer, *uid, *duration, *signKey)
	if err != nil {
		log.Fatal().Err(err).Msg("error generating token")
	}

	fmt.Println(token.SignedString)
}
