package handler

import "time"

// APIV1Prefix is the canonical base path for public HTTP API v1.
// Keep a single source of truth to avoid path drift across handlers and tests.
const APIV1Prefix = "/api/v1"

// RecapPath is the recap endpoint under APIV1Prefix.
const RecapPath = "/daily-recap"

// serviceTimeout bounds a single use-case call made from a handler.
const serviceTimeout = 10 * time.Second
