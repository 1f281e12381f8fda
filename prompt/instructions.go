// Copyright 2025 The Voyago Authors
// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"github.com/MakeNowJust/heredoc/v2"
)

// FormatInstructions is the machine-readable schema description embedded
// verbatim into every generation prompt. It mirrors the JSON shape of
// [github.com/voyago/voyago/types.ItineraryReport]; keep the two in sync.
var FormatInstructions = heredoc.Doc(`
	The output must be a single JSON object matching this schema. Omit optional
	fields you have no data for; never invent placeholder values.

	{
	  "summary": "string (required) - comprehensive summary of the travel plan",
	  "destination": "string (required) - destination name",
	  "total_days": "integer (required) - total number of days",
	  "travel_type": "string (optional)",
	  "budget_estimate": "string (optional) - total estimated budget",
	  "day_plans": [
	    {
	      "day_number": "integer (required, sequential from 1)",
	      "date": "string (optional)",
	      "title": "string (required) - title or theme for the day",
	      "description": "string (optional) - day overview",
	      "theme": "string (optional)",
	      "activities": [
	        {
	          "name": "string (required)",
	          "description": "string (optional)",
	          "location": {
	            "name": "string (required)",
	            "address": "string (optional)",
	            "latitude": "number (optional)",
	            "longitude": "number (optional)",
	            "rating": "number (optional, 0-5)",
	            "review_count": "integer (optional)",
	            "category": "string (optional)",
	            "image_url": "string (optional)"
	          },
	          "start_time": "string (optional, HH:MM)",
	          "end_time": "string (optional, HH:MM)",
	          "duration_hours": "number (optional)",
	          "cost_estimate": "string (optional)",
	          "tips": ["string (optional)"],
	          "priority": "integer (optional, 1-5)",
	          "image_url": "string (optional)",
	          "booking_info": "string (optional)"
	        }
	      ],
	      "estimated_cost": "string (optional)",
	      "notes": "string (optional)",
	      "highlights": ["string (optional)"]
	    }
	  ],
	  "top_attractions": [
	    {
	      "name": "string (required)", "address": "string", "rating": "number (0-5)",
	      "review_count": "integer", "latitude": "number", "longitude": "number",
	      "category": "string", "image_url": "string"
	    }
	  ],
	  "must_visit_places": [
	    {
	      "name": "string (required)", "address": "string", "rating": "number (0-5)",
	      "latitude": "number", "longitude": "number", "image_url": "string"
	    }
	  ],
	  "accommodation_recommendations": [
	    {
	      "name": "string (required)", "type": "string", "location": "string",
	      "price_range": "string", "rating": "number (0-5)", "review_count": "integer",
	      "recommendation_reason": "string", "amenities": ["string"],
	      "image_url": "string", "booking_url": "string"
	    }
	  ],
	  "transportation_tips": [
	    {
	      "type": "string (required)", "route": "string", "estimated_cost": "string",
	      "duration": "string", "tips": ["string"]
	    }
	  ],
	  "local_transport": "string (optional)",
	  "general_tips": ["string (optional)"],
	  "cultural_notes": ["string (optional)"],
	  "best_time_to_visit": "string (optional)",
	  "weather_info": "string (optional)",
	  "destination_image": "string (optional) - main destination image URL",
	  "cover_image": "string (optional) - cover image URL"
	}

	Return only the JSON object. Do not wrap it in markdown code fences.
`)
