// Package codec reads and writes the JSON form of the quotes file:
//
//	{
//	    "quotes": [
//	        [
//	            "<text>",
//	            "<key>"
//	        ]
//	    ]
//	}
package codec
