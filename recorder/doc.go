/*
Package recorder persists bridged messages to DynamoDB, one partition per
topic with RFC3339 stamps as the sort key, so a bridge deployment keeps a
queryable log of the traffic it carried.

Wiring it in is one callback:

	store, _ := recorder.New(accessKey, secretKey, region, table)
	factory.CreateSubscription(node, msgType, "/chatter",
	    store.Callback(ctx, "/chatter", logError), 10, nil)

Reading back uses the query builder:

	records, err := store.QueryTopic("/chatter").InLastHours(24).Run(ctx)

	for result := range store.QueryTopic("/chatter").Stream(ctx) {
	    ...
	}

The Store talks to DynamoDB through the narrow DynamoAPI interface;
tests inject fakes instead of a live table.
*/
package recorder
