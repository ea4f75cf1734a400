// Package domain holds the entities of the listing service: users and their
// sessions, properties, agent profiles and payment gateways. Nothing here
// talks to storage or the network; services and stores exchange these types.
package domain
