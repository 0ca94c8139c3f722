// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

/*
Package supervisor runs the long-lived services under suture v4.

	gigboard (root)
	├── messaging-layer
	│   ├── feedback-forwarder   sink → broker, circuit-broken
	│   └── feedback-recorder    gochannel transport only
	└── api-layer
	    └── http-server

Crashed services restart with suture's backoff; each layer counts failures
independently. Cancelling the context passed to Serve stops the tree within
TreeConfig.ShutdownTimeout per service, and UnstoppedServiceReport lists
anything that overran.

Supervisor events go to the zerolog global logger through sutureslog and
logging.NewSlogLogger:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddMessagingService(forwarder)
	tree.AddAPIService(httpService)
	err = tree.Serve(ctx)
*/
package supervisor
