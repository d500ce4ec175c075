// Package environment names the deployment environments securekit knows
// about and answers whether the current one is safe for handling secrets.
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	if !environment.IsSecure("http://shop.example.com", env) {
//	    // refuse to store session tokens
//	}
package environment
