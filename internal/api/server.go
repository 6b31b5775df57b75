// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package api

import (
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/likexian/selfca"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/context"
)

// Serve runs the API over TLS until SIGINT or SIGTERM. Without a certificate pair a
// self-signed certificate is generated.
func Serve(cfg Config) error {
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	router, closer, err := NewRouter(cfg)
	if err != nil {
		return fmt.Errorf("error initializing API: %w", err)
	}
	defer closer()

	srvAddr := fmt.Sprintf(":%s", cfg.Port)
	srv := &http.Server{
		Addr:              srvAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	if cfg.TLSCert == "" || cfg.TLSKey == "" {
		log.Warn().Msgf("using auto self-signed certificate for TLS. This is not recommended for production. Please consider using your own certificates.")
		pair, err := selfSignedPair()
		if err != nil {
			return err
		}

		srv.TLSConfig = &tls.Config{
			MinVersion:   tls.VersionTLS12,
			Certificates: []tls.Certificate{pair},
		}
	}

	errs := make(chan error, 1)
	go func() {
		log.Info().Msgf("starting TLS Server on address: %s", srvAddr)
		// with a TLSConfig holding the certificate no files are needed
		if err := srv.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
	}()

	return gracefulShutdown(srv, errs)
}

func selfSignedPair() (tls.Certificate, error) {
	caConfig := selfca.Certificate{
		IsCA:      true,
		KeySize:   2048,
		NotBefore: time.Now(),
		// 30 day self-signed cert.
		NotAfter: time.Now().Add(time.Duration(30*24) * time.Hour),
	}

	certificate, key, err := selfca.GenerateCertificate(caConfig)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("error generating auto self-signed certificate: %w", err)
	}

	pair, err := tls.X509KeyPair(
		pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: certificate}),
		pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)}),
	)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("error using auto self-signed certificate: %w", err)
	}

	return pair, nil
}

func gracefulShutdown(srv *http.Server, errs <-chan error) error {
	// Wait for interrupt signal to gracefully shut down the server with
	// a timeout.
	quit := make(chan os.Signal, 1)
	// kill (no param) default send syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	// kill -9 is syscall. SIGKILL but can't be a catch, so don't need to add it
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errs:
		return fmt.Errorf("error starting server: %w", err)
	case <-quit:
	}
	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Warn().Err(err).Msg("server Shutdown.")
	}

	log.Info().Msg("server exiting...")
	return nil
}
