// Copyright (c) 2026 Mergington High School.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the wire and domain types shared by the activities
API server and its clients.

# Activity Collection

The API represents the activity collection as a JSON object keyed by
activity name:

	{
	  "Chess Club": {
	    "description": "...",
	    "schedule": "...",
	    "max_participants": 12,
	    "participants": ["michael@mergington.edu"]
	  }
	}

Key order is meaningful: the front-end renders activities in the order the
server returns them. ActivityList implements json.Marshaler and
json.Unmarshaler so that order survives both directions.

# Response Envelopes

Mutations return MessageResponse on success and DetailResponse on failure:

	{"message": "Signed up john@mergington.edu for Chess Club"}
	{"detail": "Student is already signed up"}
*/
package models
