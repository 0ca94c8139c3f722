// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

/*
Package services adapts blocking components to suture's Serve(ctx) error
contract.

HTTPServerService translates http.Server's ListenAndServe/Shutdown pair:

	srv := services.NewHTTPServer(&cfg.Server, router.SetupChi())
	tree.AddAPIService(services.NewHTTPServerService(srv, cfg.Server.Addr(), cfg.Server.ShutdownTimeout, logger))

The feedback forwarder and recorder implement suture.Service themselves and
are added to the messaging layer directly.
*/
package services
