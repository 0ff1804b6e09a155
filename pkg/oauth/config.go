package oauth

import "time"

// Default Facebook Graph API endpoints.
const (
	FacebookDialogURL = "https://www.facebook.com/v2.12/dialog/oauth"
	FacebookTokenURL  = "https://graph.facebook.com/v2.12/oauth/access_token"

	defaultExchangeTimeout = 10 * time.Second
)

// FacebookConfig holds the Facebook app credentials and endpoints.
type FacebookConfig struct {
	AppID           string        `env:"FACEBOOK_APP_ID,required"`
	AppSecret       string        `env:"FACEBOOK_APP_SECRET,required"`
	RedirectURL     string        `env:"FACEBOOK_REDIRECT_URL,required"`
	DialogURL       string        `env:"FACEBOOK_DIALOG_URL" envDefault:"https://www.facebook.com/v2.12/dialog/oauth"`
	TokenURL        string        `env:"FACEBOOK_TOKEN_URL" envDefault:"https://graph.facebook.com/v2.12/oauth/access_token"`
	ExchangeTimeout time.Duration `env:"FACEBOOK_EXCHANGE_TIMEOUT" envDefault:"10s"`
}
