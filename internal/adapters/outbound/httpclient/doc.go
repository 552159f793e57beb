// Package httpclient provides the mTLS HTTP client used to reach the session API.
//
// The client presents the identity certificate from the trust configuration and
// trusts only the authorities of the selected trust anchor. Build the TLS
// configuration with identitytls.NewClientTLSConfig:
//
//	tlsCfg, err := identitytls.NewClientTLSConfig(anchor.Bundle, certPEM, keyPEM)
//	if err != nil {
//	    return err
//	}
//	client, err := httpclient.New(tlsCfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
// Requests carry no timeout unless WithTimeout is given; cancel the request
// context to abort a submission.
//
// The client is safe for concurrent use.
package httpclient
